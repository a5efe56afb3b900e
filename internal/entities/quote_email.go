package entities

// QuoteEmailData feeds the quote confirmation email template.
type QuoteEmailData struct {
	UserName    string
	Code        string
	ServiceType string
	Subtotal    float64
	Tax         float64
	Total       float64
	Fees        []FeeLineResponse
	Language    string
	CurrentYear int
}
