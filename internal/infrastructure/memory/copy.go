package memory

import (
	"maps"
	"slices"
	"time"

	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
)

func copyBusiness(b *entity.Business) *entity.Business {
	c := *b
	c.Settings = maps.Clone(b.Settings)
	if c.Settings == nil {
		c.Settings = map[string]any{}
	}
	return &c
}

func copyUser(u *entity.User) *entity.User {
	c := *u
	c.LastLogin = copyTime(u.LastLogin)
	return &c
}

func copyItem(i *entity.InventoryItem) *entity.InventoryItem {
	c := *i
	return &c
}

func copySale(s *entity.Sale) *entity.Sale {
	c := *s
	c.Items = slices.Clone(s.Items)
	if s.CustomerID != nil {
		id := *s.CustomerID
		c.CustomerID = &id
	}
	return &c
}

func copyCustomer(cu *entity.Customer) *entity.Customer {
	c := *cu
	return &c
}

func copyNotification(n *entity.Notification) *entity.Notification {
	c := *n
	return &c
}

func copyReport(r *entity.Report) *entity.Report {
	c := *r
	c.Data = slices.Clone(r.Data)
	return &c
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// collect filtra y copia filas; el orden lo fija el llamador.
func collect[T any](rows map[int64]*T, keep func(*T) bool, cp func(*T) *T) []*T {
	out := make([]*T, 0)
	for _, row := range rows {
		if keep(row) {
			out = append(out, cp(row))
		}
	}
	return out
}
