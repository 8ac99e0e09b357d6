package dto

import "github.com/jhoicas/SmartOps-api/internal/domain/entity"

// FromBusiness convierte la entidad a su representación de salida.
func FromBusiness(b *entity.Business) *BusinessResponse {
	if b == nil {
		return nil
	}
	settings := b.Settings
	if settings == nil {
		settings = map[string]any{}
	}
	return &BusinessResponse{
		ID:          b.ID,
		Name:        b.Name,
		Subdomain:   b.Subdomain,
		Description: b.Description,
		Email:       b.Email,
		Phone:       b.Phone,
		Address:     b.Address,
		Timezone:    b.Timezone,
		Currency:    b.Currency,
		TaxRate:     b.TaxRate,
		IsActive:    b.IsActive,
		Settings:    settings,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// FromUser convierte el usuario (sin hash de password). business es opcional.
func FromUser(u *entity.User, business *entity.Business) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:         u.ID,
		BusinessID: u.BusinessID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Role:       u.Role,
		IsActive:   u.IsActive,
		LastLogin:  u.LastLogin,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
		Business:   FromBusiness(business),
	}
}

// FromUsers convierte una lista de usuarios.
func FromUsers(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *FromUser(u, nil))
	}
	return out
}

// FromInventoryItem convierte un artículo.
func FromInventoryItem(i *entity.InventoryItem) *InventoryItemResponse {
	if i == nil {
		return nil
	}
	return &InventoryItemResponse{
		ID:           i.ID,
		BusinessID:   i.BusinessID,
		Name:         i.Name,
		SKU:          i.SKU,
		Description:  i.Description,
		Category:     i.Category,
		Barcode:      i.Barcode,
		Price:        i.Price,
		Cost:         i.Cost,
		Quantity:     i.Quantity,
		ReorderPoint: i.ReorderPoint,
		SoldCount:    i.SoldCount,
		LowStock:     i.LowStock(),
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

// FromInventoryItems convierte una lista de artículos.
func FromInventoryItems(items []*entity.InventoryItem) []InventoryItemResponse {
	out := make([]InventoryItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, *FromInventoryItem(i))
	}
	return out
}

// FromSale convierte una venta.
func FromSale(s *entity.Sale) *SaleResponse {
	if s == nil {
		return nil
	}
	items := make([]SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, SaleItemResponse{ID: it.ItemID, Name: it.Name, Quantity: it.Quantity, Price: it.Price})
	}
	return &SaleResponse{
		ID:            s.ID,
		BusinessID:    s.BusinessID,
		CustomerID:    s.CustomerID,
		UserID:        s.UserID,
		Items:         items,
		PaymentMethod: s.PaymentMethod,
		Total:         s.Total,
		Tax:           s.Tax,
		Discount:      s.Discount,
		CreatedAt:     s.CreatedAt,
	}
}

// FromSales convierte una lista de ventas.
func FromSales(sales []*entity.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, *FromSale(s))
	}
	return out
}

// FromCustomer convierte un cliente.
func FromCustomer(c *entity.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}
	return &CustomerResponse{
		ID:         c.ID,
		BusinessID: c.BusinessID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address,
		IsVIP:      c.IsVIP,
		TotalSpent: c.TotalSpent,
		VisitCount: c.VisitCount,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// FromCustomers convierte una lista de clientes.
func FromCustomers(list []*entity.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *FromCustomer(c))
	}
	return out
}

// FromNotification convierte una notificación.
func FromNotification(n *entity.Notification) *NotificationResponse {
	if n == nil {
		return nil
	}
	return &NotificationResponse{
		ID:         n.ID,
		BusinessID: n.BusinessID,
		Title:      n.Title,
		Message:    n.Message,
		Type:       n.Type,
		Priority:   n.Priority,
		IsRead:     n.IsRead,
		CreatedAt:  n.CreatedAt,
	}
}

// FromNotifications convierte una lista de notificaciones.
func FromNotifications(list []*entity.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, *FromNotification(n))
	}
	return out
}

// FromReport convierte un reporte.
func FromReport(r *entity.Report) *ReportResponse {
	if r == nil {
		return nil
	}
	return &ReportResponse{
		ID:         r.ID,
		BusinessID: r.BusinessID,
		Name:       r.Name,
		Type:       r.Type,
		DateRange:  DateRangeDTO{From: r.DateRange.From, To: r.DateRange.To},
		Format:     r.Format,
		Status:     r.Status,
		Data:       r.Data,
		CreatedAt:  r.CreatedAt,
	}
}

// FromReports convierte una lista de reportes.
func FromReports(list []*entity.Report) []ReportResponse {
	out := make([]ReportResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *FromReport(r))
	}
	return out
}
