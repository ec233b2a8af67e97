package model

// Product is a single inventory record. The id is the Firestore document id
// and is only set once the store has assigned it; the owner id is written at
// creation time and never changes afterwards.
type Product struct {
	ID       string  `firestore:"-" json:"id"`
	Code     string  `firestore:"code" json:"code"`
	Name     string  `firestore:"name" json:"name"`
	Price    float64 `firestore:"price" json:"price"`
	Quantity int     `firestore:"quantity" json:"quantity"`
	OwnerID  string  `firestore:"userId" json:"userId"`
}

// Total is the derived per-record value. It is never stored.
func (p Product) Total() float64 {
	return p.Price * float64(p.Quantity)
}
