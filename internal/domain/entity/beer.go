package entity

import "github.com/shopspring/decimal"

// Beer una referencia del catálogo de cervezas/cidres en fût, con su precio TTC por fût.
type Beer struct {
	ID       int64
	Name     string
	PriceTTC decimal.Decimal // precio TTC por fût, congelado en cada movimiento al registrarlo
}
