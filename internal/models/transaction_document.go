package models

// TransactionDocument is the shape stored in the mongo transactions collection.
// Money is kept as decimal strings and the retirement date as yyyy-MM-dd.
type TransactionDocument struct {
	ID                      string  `bson:"_id"`
	CustomerID              string  `bson:"customerId"`
	ProductID               string  `bson:"productId"`
	AccountNumber           string  `bson:"accountNumber"`
	MovementLimit           int     `bson:"movementLimit"`
	CreditLimit             string  `bson:"creditLimit"`
	AvailableBalance        string  `bson:"availableBalance"`
	MaintenanceCommission   string  `bson:"maintenanceCommission"`
	CardNumber              string  `bson:"cardNumber"`
	RetirementDateFixedTerm *string `bson:"retirementDateFixedTerm,omitempty"`
}
