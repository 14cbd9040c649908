package entity

// Client un cliente del negocio (bar, restaurante, particular) que alquila fûts.
type Client struct {
	ID   int64
	Name string
}
