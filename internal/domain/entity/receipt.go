package entity

// Receipt is the printable view of a completed sale. It is never persisted;
// it is built from a Sale and handed to the printer or returned to the caller.
type Receipt struct {
	Header    ReceiptHeader `json:"header"`
	InvoiceNo string        `json:"invoice_no"`
	Date      string        `json:"date"`
	Customer  string        `json:"customer"`
	SaleType  string        `json:"sale_type"`
	Items     []ReceiptItem `json:"items"`
	Total     float64       `json:"total"`
	Currency  string        `json:"currency"`
}

// ReceiptHeader carries the business identity printed at the top.
type ReceiptHeader struct {
	BusinessName string `json:"business_name"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
}

// ReceiptItem is one printed line.
type ReceiptItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}
