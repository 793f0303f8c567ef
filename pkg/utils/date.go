package utils

import "time"

const HumanDateLayout = "January 2, 2006"

// Yesterday retorna o dia anterior a now no calendário UTC, no formato YYYY-MM-DD
func Yesterday(now time.Time) string {
	return now.UTC().AddDate(0, 0, -1).Format(time.DateOnly)
}

// ISODate retorna a data UTC de t no formato YYYY-MM-DD
func ISODate(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// HumanDate retorna a data por extenso usada no assunto e no corpo do relatório
func HumanDate(t time.Time) string {
	return t.Format(HumanDateLayout)
}
