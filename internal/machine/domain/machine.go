package domain

// Product is one slot entry on a vending machine. Field names follow the
// fleet's wire format: price and stock live next to the quantity selected
// for the machine's current purchase.
type Product struct {
	Name      string  `json:"nombre" firestore:"nombre"`
	UnitPrice float64 `json:"precio" firestore:"precio"`
	Quantity  int     `json:"cantidad" firestore:"cantidad"`
	Stock     int     `json:"stock" firestore:"stock"`
}

// Machine is the stored record for a single vending unit. Records are
// created and maintained by an external administrative process; this
// service only reads them and rewrites productos after an approved payment.
type Machine struct {
	ID       string    `json:"-" firestore:"-"`
	Products []Product `json:"productos" firestore:"productos"`
}

// ClampDecrement lowers stock by n, never below zero.
func ClampDecrement(stock, n int) int {
	if n >= stock {
		return 0
	}
	return stock - n
}

// ApplyPurchase decrements every product's stock by its own stored
// quantity, clamping at zero.
func (m *Machine) ApplyPurchase() {
	for i := range m.Products {
		m.Products[i].Stock = ClampDecrement(m.Products[i].Stock, m.Products[i].Quantity)
	}
}
