// Package memory implementa los puertos de repositorio sobre estructuras en memoria.
// Sirve para desarrollo local y para los tests de la API; los datos se pierden al cerrar.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
	"github.com/jhoicas/SmartOps-api/internal/domain/repository"
)

// state contiene todas las colecciones. Las filas se guardan como copias propias:
// nada de lo que devuelve un repositorio comparte memoria con el estado.
type state struct {
	seq           map[string]int64
	businesses    map[int64]*entity.Business
	users         map[int64]*entity.User
	inventory     map[int64]*entity.InventoryItem
	sales         map[int64]*entity.Sale
	customers     map[int64]*entity.Customer
	notifications map[int64]*entity.Notification
	reports       map[int64]*entity.Report
}

func newState() *state {
	return &state{
		seq:           map[string]int64{},
		businesses:    map[int64]*entity.Business{},
		users:         map[int64]*entity.User{},
		inventory:     map[int64]*entity.InventoryItem{},
		sales:         map[int64]*entity.Sale{},
		customers:     map[int64]*entity.Customer{},
		notifications: map[int64]*entity.Notification{},
		reports:       map[int64]*entity.Report{},
	}
}

func (s *state) nextID(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.seq {
		c.seq[k] = v
	}
	cloneRows(c.businesses, s.businesses, copyBusiness)
	cloneRows(c.users, s.users, copyUser)
	cloneRows(c.inventory, s.inventory, copyItem)
	cloneRows(c.sales, s.sales, copySale)
	cloneRows(c.customers, s.customers, copyCustomer)
	cloneRows(c.notifications, s.notifications, copyNotification)
	cloneRows(c.reports, s.reports, copyReport)
	return c
}

func cloneRows[T any](dst, src map[int64]*T, cp func(*T) *T) {
	for id, row := range src {
		dst[id] = cp(row)
	}
}

// Store es el almacenamiento en memoria. Un único RWMutex protege el estado;
// las transacciones trabajan sobre una copia que se publica solo si fn no falla.
type Store struct {
	mu sync.RWMutex
	st *state
}

// New crea un Store vacío.
func New() *Store {
	return &Store{st: newState()}
}

// Close libera el estado. El Store no debe usarse después.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st = newState()
	return nil
}

// view ejecuta fn con lectura. Si tx no es nil, el llamador ya tiene el lock del TxRunner.
func (s *Store) view(tx *state, fn func(st *state)) {
	if tx != nil {
		fn(tx)
		return
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.st)
}

// update ejecuta fn con escritura exclusiva (o sobre el estado de la transacción).
func (s *Store) update(tx *state, fn func(st *state) error) error {
	if tx != nil {
		return fn(tx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.st)
}

// Repos devuelve los repositorios sobre el estado compartido.
func (s *Store) Repos() repository.Repos {
	return s.repos(nil)
}

func (s *Store) repos(tx *state) repository.Repos {
	return repository.Repos{
		Businesses:    &BusinessRepo{store: s, tx: tx},
		Users:         &UserRepo{store: s, tx: tx},
		Inventory:     &InventoryRepo{store: s, tx: tx},
		Sales:         &SaleRepo{store: s, tx: tx},
		Customers:     &CustomerRepo{store: s, tx: tx},
		Notifications: &NotificationRepo{store: s, tx: tx},
		Reports:       &ReportRepo{store: s, tx: tx},
	}
}

// TxRunner serializa las transacciones: toma el lock de escritura, ejecuta fn
// sobre una copia del estado y la publica solo si fn termina sin error.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el Store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run implementa repository.TxRunner.
func (r *TxRunner) Run(ctx context.Context, fn func(repos repository.Repos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	staged := r.store.st.clone()
	if err := fn(r.store.repos(staged)); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.st = staged
	return nil
}

var _ repository.TxRunner = (*TxRunner)(nil)
