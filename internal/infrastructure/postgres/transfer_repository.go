package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementación del libro de traslados sobre PostgreSQL
// (usable con pool o tx).
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create persiste la cabecera del traslado.
func (r *TransferRepo) Create(t *entity.Transfer) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	query := `
		INSERT INTO transfers (id, source_kind, source_id, dest_kind, dest_id, status, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, string(t.Source.Kind), t.Source.ID, string(t.Destination.Kind), t.Destination.ID,
		t.Status, t.Date, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

// CreateItem persiste una línea del traslado.
func (r *TransferRepo) CreateItem(item *entity.TransferItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO transfer_items (id, transfer_id, product_id, quantity, position)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.TransferID, item.ProductID, item.Quantity, item.Position,
	)
	if err != nil {
		return fmt.Errorf("insert transfer item: %w", err)
	}
	return nil
}

// GetByID obtiene un traslado con sus líneas ordenadas; nil si no existe.
func (r *TransferRepo) GetByID(id string) (*entity.Transfer, error) {
	query := `
		SELECT id, source_kind, source_id, dest_kind, dest_id, status, date, created_at, updated_at
		FROM transfers WHERE id = $1`
	var t entity.Transfer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Source.Kind, &t.Source.ID, &t.Destination.Kind, &t.Destination.ID,
		&t.Status, &t.Date, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}
	items, err := r.loadItems(t.ID)
	if err != nil {
		return nil, err
	}
	t.Items = items
	return &t, nil
}

// Update reescribe la cabecera (origen, destino, fecha).
func (r *TransferRepo) Update(t *entity.Transfer) error {
	query := `
		UPDATE transfers
		SET source_kind = $2, source_id = $3, dest_kind = $4, dest_id = $5,
		    status = $6, date = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, string(t.Source.Kind), t.Source.ID, string(t.Destination.Kind), t.Destination.ID,
		t.Status, t.Date, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update transfer: %w", err)
	}
	return nil
}

// ReplaceItems borra todas las líneas del traslado e inserta el nuevo conjunto.
func (r *TransferRepo) ReplaceItems(transferID string, items []*entity.TransferItem) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM transfer_items WHERE transfer_id = $1`, transferID); err != nil {
		return fmt.Errorf("delete transfer items: %w", err)
	}
	for _, item := range items {
		item.TransferID = transferID
		if err := r.CreateItem(item); err != nil {
			return err
		}
	}
	return nil
}

// Delete borra líneas y luego cabecera.
func (r *TransferRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM transfer_items WHERE transfer_id = $1`, id); err != nil {
		return fmt.Errorf("delete transfer items: %w", err)
	}
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM transfers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete transfer: %w", err)
	}
	return nil
}

// List devuelve traslados del rango de fechas, más recientes primero, con sus líneas.
func (r *TransferRepo) List(from, to *time.Time, limit, offset int) ([]*entity.Transfer, error) {
	query := `
		SELECT id, source_kind, source_id, dest_kind, dest_id, status, date, created_at, updated_at
		FROM transfers WHERE 1=1`
	args := []any{}
	pos := 1
	if from != nil {
		query += fmt.Sprintf(" AND date >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND date <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY date DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Transfer
	for rows.Next() {
		var t entity.Transfer
		if err := rows.Scan(&t.ID, &t.Source.Kind, &t.Source.ID, &t.Destination.Kind, &t.Destination.ID,
			&t.Status, &t.Date, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		list = append(list, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, t := range list {
		items, err := r.loadItems(t.ID)
		if err != nil {
			return nil, err
		}
		t.Items = items
	}
	return list, nil
}

func (r *TransferRepo) loadItems(transferID string) ([]entity.TransferItem, error) {
	query := `
		SELECT id, transfer_id, product_id, quantity, position
		FROM transfer_items WHERE transfer_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, transferID)
	if err != nil {
		return nil, fmt.Errorf("list transfer items: %w", err)
	}
	defer rows.Close()
	var items []entity.TransferItem
	for rows.Next() {
		var it entity.TransferItem
		if err := rows.Scan(&it.ID, &it.TransferID, &it.ProductID, &it.Quantity, &it.Position); err != nil {
			return nil, fmt.Errorf("scan transfer item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
