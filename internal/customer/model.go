package customer

// Info is the flat customer record served by the CRM backend. Every field is
// a string; fields the backend omits stay empty.
type Info struct {
	ClientID        string `json:"clientId"`
	EditApproval    string `json:"editApproval"`
	Dba             string `json:"dba"`
	ClientLegalName string `json:"clientLegalName"`
	ComplianceHold  string `json:"complianceHold"`
	Level           string `json:"level"`
	PaymentTermID   string `json:"paymentTermID"`
	PaymentMethod   string `json:"paymentMethod"`
	Status          string `json:"status"`
}
