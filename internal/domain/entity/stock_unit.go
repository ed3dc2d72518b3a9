package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/windwireless/operations-api/internal/domain"
)

// UnitStatus estado de una pieza física de inventario.
// Las piezas con soft-delete se filtran en la capa de datos y nunca llegan aquí.
type UnitStatus string

const (
	StatusAvailable UnitStatus = "Available"
	StatusSold      UnitStatus = "Sold"
)

// Valid indica si el estado es uno de los conocidos.
func (s UnitStatus) Valid() bool {
	return s == StatusAvailable || s == StatusSold
}

// StockUnit una pieza física de mercancía, rastreada individualmente (serial/IMEI).
// Model es texto libre tal como se registró: el cruce con reservas es por igualdad
// exacta de string, no por llave foránea.
type StockUnit struct {
	ID        string
	Model     string
	Price     decimal.Decimal // moneda única del sistema (USD)
	Status    UnitStatus
	CreatedAt time.Time
}

// NewStockUnit construye una pieza validada. Si id viene vacío se genera un UUID.
// Rechaza precios negativos y estados desconocidos: el núcleo de agregación asume
// que nunca recibe formas malformadas.
func NewStockUnit(id, model string, price decimal.Decimal, status UnitStatus, createdAt time.Time) (StockUnit, error) {
	if id == "" {
		id = uuid.NewString()
	}
	if model == "" {
		return StockUnit{}, fmt.Errorf("%w: model vacío", domain.ErrInvalidInput)
	}
	if price.IsNegative() {
		return StockUnit{}, fmt.Errorf("%w: precio negativo %s", domain.ErrInvalidInput, price)
	}
	if !status.Valid() {
		return StockUnit{}, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, status)
	}
	return StockUnit{ID: id, Model: model, Price: price, Status: status, CreatedAt: createdAt}, nil
}
