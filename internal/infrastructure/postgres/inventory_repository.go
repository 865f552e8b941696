package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL
// (usable con pool o tx). La tabla stock tiene una fila por (producto, ubicación)
// con CHECK quantity >= 0 como última línea de defensa.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Get obtiene las existencias de un producto en una ubicación.
// Si no hay fila devuelve un registro con cantidad 0 (ausencia significa cero).
func (r *InventoryRepo) Get(productID string, loc entity.LocationRef) (*entity.InventoryRecord, error) {
	query := `
		SELECT product_id, location_kind, location_id, quantity, updated_at
		FROM stock WHERE product_id = $1 AND location_kind = $2 AND location_id = $3`
	return r.scanOne(query, productID, loc)
}

// GetForUpdate obtiene las existencias bloqueando la fila (SELECT FOR UPDATE)
// para serializar mutaciones concurrentes sobre el mismo par.
func (r *InventoryRepo) GetForUpdate(productID string, loc entity.LocationRef) (*entity.InventoryRecord, error) {
	query := `
		SELECT product_id, location_kind, location_id, quantity, updated_at
		FROM stock WHERE product_id = $1 AND location_kind = $2 AND location_id = $3
		FOR UPDATE`
	return r.scanOne(query, productID, loc)
}

func (r *InventoryRepo) scanOne(query, productID string, loc entity.LocationRef) (*entity.InventoryRecord, error) {
	var rec entity.InventoryRecord
	err := r.q.QueryRow(context.Background(), query, productID, string(loc.Kind), loc.ID).Scan(
		&rec.ProductID, &rec.Location.Kind, &rec.Location.ID, &rec.Quantity, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.InventoryRecord{ProductID: productID, Location: loc}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &rec, nil
}

// Upsert inserta o actualiza la cantidad (por producto y ubicación).
// La fila nunca se borra: cantidad 0 significa "conocido pero vacío".
func (r *InventoryRepo) Upsert(rec *entity.InventoryRecord) error {
	query := `
		INSERT INTO stock (product_id, location_kind, location_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (product_id, location_kind, location_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		rec.ProductID, string(rec.Location.Kind), rec.Location.ID, rec.Quantity)
	if err != nil {
		// El CHECK quantity >= 0 solo dispara si alguien escribió por fuera
		// del plan de deltas; se reporta como insuficiencia, no como fallo interno.
		if isCheckViolation(err) {
			return fmt.Errorf("upsert stock %s en %s: %w", rec.ProductID, rec.Location, domain.ErrInsufficientStock)
		}
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// TotalQuantity suma las existencias del producto en todas las ubicaciones.
func (r *InventoryRepo) TotalQuantity(productID string) (int64, error) {
	query := `SELECT COALESCE(SUM(quantity), 0) FROM stock WHERE product_id = $1`
	var total int64
	if err := r.q.QueryRow(context.Background(), query, productID).Scan(&total); err != nil {
		return 0, fmt.Errorf("total stock: %w", err)
	}
	return total, nil
}

// ListByLocation lista las existencias de una ubicación.
func (r *InventoryRepo) ListByLocation(loc entity.LocationRef, limit, offset int) ([]*entity.InventoryRecord, error) {
	query := `
		SELECT product_id, location_kind, location_id, quantity, updated_at
		FROM stock WHERE location_kind = $1 AND location_id = $2
		ORDER BY product_id LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, string(loc.Kind), loc.ID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock by location: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// ListByProduct lista las existencias de un producto en todas sus ubicaciones.
func (r *InventoryRepo) ListByProduct(productID string) ([]*entity.InventoryRecord, error) {
	query := `
		SELECT product_id, location_kind, location_id, quantity, updated_at
		FROM stock WHERE product_id = $1
		ORDER BY location_kind, location_id`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list stock by product: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

func scanRecords(rows pgx.Rows) ([]*entity.InventoryRecord, error) {
	var list []*entity.InventoryRecord
	for rows.Next() {
		var rec entity.InventoryRecord
		if err := rows.Scan(&rec.ProductID, &rec.Location.Kind, &rec.Location.ID, &rec.Quantity, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}
