package model

// Customer is a buyer record. Deleting a customer does not cascade into the
// movement log — historical entries keep their customerId and resolve to
// "Unknown" at read time.
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

func (c Customer) RecordID() string { return c.ID }
