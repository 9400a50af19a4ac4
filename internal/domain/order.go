package domain

import "time"

// Order representa uma linha de item de pedido do dataset de vendas,
// já com as colunas derivadas do enriquecimento (is_retention e
// region_manager) quando carregada do arquivo enriquecido.
type Order struct {
	RowID         int       `json:"row_id"`
	OrderID       string    `json:"order_id"`
	OrderDate     time.Time `json:"order_date"`
	ShipDate      time.Time `json:"ship_date"`
	ShipMode      string    `json:"ship_mode"`
	CustomerID    string    `json:"customer_id"`
	CustomerName  string    `json:"customer_name"`
	Segment       string    `json:"segment"`
	Country       string    `json:"country"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	PostalCode    string    `json:"postal_code"`
	Region        string    `json:"region"`
	ProductID     string    `json:"product_id"`
	Category      string    `json:"category"`
	SubCategory   string    `json:"sub_category"`
	ProductName   string    `json:"product_name"`
	Sales         float64   `json:"sales"`
	Quantity      int       `json:"quantity"`
	Discount      float64   `json:"discount"`
	Profit        float64   `json:"profit"`
	IsRetention   bool      `json:"is_retention"`
	RegionManager string    `json:"region_manager"`
}

// Year retorna o ano derivado da data do pedido.
func (o Order) Year() int {
	return o.OrderDate.Year()
}

// DaysToShip retorna a quantidade de dias entre o pedido e o envio.
// A diferença é absoluta: uma data de envio anterior à do pedido não é
// validada aqui, apenas mascarada.
func (o Order) DaysToShip() int {
	days := int(o.ShipDate.Sub(o.OrderDate).Hours() / 24)
	if days < 0 {
		return -days
	}
	return days
}
