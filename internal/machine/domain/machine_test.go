package domain

import "testing"

func TestClampDecrement(t *testing.T) {
	cases := []struct {
		stock, n, want int
	}{
		{10, 3, 7},
		{3, 5, 0},
		{3, 3, 0},
		{0, 1, 0},
		{5, 0, 5},
		{0, 0, 0},
	}
	for _, c := range cases {
		got := ClampDecrement(c.stock, c.n)
		if got != c.want {
			t.Fatalf("ClampDecrement(%d, %d) = %d, want %d", c.stock, c.n, got, c.want)
		}
		if got < 0 {
			t.Fatalf("ClampDecrement(%d, %d) went negative: %d", c.stock, c.n, got)
		}
	}
}

func TestApplyPurchase(t *testing.T) {
	m := Machine{
		ID: "maq-1",
		Products: []Product{
			{Name: "agua", UnitPrice: 15, Quantity: 2, Stock: 10},
			{Name: "refresco", UnitPrice: 20, Quantity: 5, Stock: 3},
			{Name: "papas", UnitPrice: 18, Quantity: 0, Stock: 4},
		},
	}

	m.ApplyPurchase()

	want := []int{8, 0, 4}
	for i, p := range m.Products {
		if p.Stock != want[i] {
			t.Fatalf("product %q stock = %d, want %d", p.Name, p.Stock, want[i])
		}
	}
}
