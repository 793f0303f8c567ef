package domain

// Report é o documento renderizado de uma execução
type Report struct {
	ISODate   string
	HumanDate string
	Subject   string
	HTML      string
}
