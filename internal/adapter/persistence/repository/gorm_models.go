package repository

import (
	"encoding/json"
	"time"

	"oficina/internal/domain/entities"

	"gorm.io/gorm"
)

type ClientModel struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	Name      string `gorm:"not null"`
	Phone     string
	Email     string
	CreatedAt time.Time
}

func (ClientModel) TableName() string { return "clients" }

type VehicleModel struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	ClientID  string `gorm:"type:varchar(36);index;not null"`
	Plate     string `gorm:"index;not null"`
	Brand     string
	Model     string
	Year      int
	CreatedAt time.Time
}

func (VehicleModel) TableName() string { return "vehicles" }

type ServiceOrderModel struct {
	ID                  string `gorm:"primaryKey;type:varchar(36)"`
	OrderNumber         int64  `gorm:"uniqueIndex"`
	ClientID            string `gorm:"type:varchar(36);index"`
	VehicleID           string `gorm:"type:varchar(36);index"`
	MechanicID          string `gorm:"type:varchar(36)"`
	Status              string `gorm:"index;not null"`
	Total               *float64
	ProblemDescription  *string
	CreatedAt           time.Time
	CompletedAt         *time.Time
	EstimatedCompletion *time.Time

	Items   []ServiceOrderItemModel `gorm:"foreignKey:OrderID"`
	Client  *ClientModel            `gorm:"foreignKey:ClientID"`
	Vehicle *VehicleModel           `gorm:"foreignKey:VehicleID"`
}

func (ServiceOrderModel) TableName() string { return "service_orders" }

type ServiceOrderItemModel struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	OrderID     string `gorm:"type:varchar(36);index;not null"`
	Description string
	Status      string `gorm:"not null;default:pendente"`
	TotalPrice  *float64
	Quantidade  int
}

func (ServiceOrderItemModel) TableName() string { return "service_order_items" }

type OrderPaymentModel struct {
	ID           string `gorm:"primaryKey"`
	OrderID      string `gorm:"type:varchar(36);index;not null"`
	Amount       float64
	Date         time.Time
	Status       string `gorm:"not null"`
	MPPayloadRaw string `gorm:"type:text"`
}

func (OrderPaymentModel) TableName() string { return "order_payments" }

type SystemConfigModel struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

func (SystemConfigModel) TableName() string { return "system_config" }

// AutoMigrate creates or updates the relational schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&ClientModel{},
		&VehicleModel{},
		&ServiceOrderModel{},
		&ServiceOrderItemModel{},
		&OrderPaymentModel{},
		&SystemConfigModel{},
	)
}

func toClientModel(c entities.Client) ClientModel {
	return ClientModel{ID: c.ID, Name: c.Name, Phone: c.Phone, Email: c.Email, CreatedAt: c.CreatedAt}
}

func (m ClientModel) toEntity() entities.Client {
	return entities.Client{ID: m.ID, Name: m.Name, Phone: m.Phone, Email: m.Email, CreatedAt: m.CreatedAt}
}

func toVehicleModel(v entities.Vehicle) VehicleModel {
	return VehicleModel{
		ID:        v.ID,
		ClientID:  v.ClientID,
		Plate:     v.Plate,
		Brand:     v.Brand,
		Model:     v.Model,
		Year:      v.Year,
		CreatedAt: v.CreatedAt,
	}
}

func (m VehicleModel) toEntity() entities.Vehicle {
	return entities.Vehicle{
		ID:        m.ID,
		ClientID:  m.ClientID,
		Plate:     m.Plate,
		Brand:     m.Brand,
		Model:     m.Model,
		Year:      m.Year,
		CreatedAt: m.CreatedAt,
	}
}

func toServiceOrderModel(o entities.ServiceOrder) ServiceOrderModel {
	m := ServiceOrderModel{
		ID:                  o.ID,
		OrderNumber:         o.OrderNumber,
		ClientID:            o.ClientID,
		VehicleID:           o.VehicleID,
		MechanicID:          o.MechanicID,
		Status:              string(o.Status),
		Total:               o.Total,
		ProblemDescription:  o.ProblemDescription,
		CreatedAt:           o.CreatedAt,
		CompletedAt:         o.CompletedAt,
		EstimatedCompletion: o.EstimatedCompletion,
	}
	for _, it := range o.Items {
		m.Items = append(m.Items, ServiceOrderItemModel{
			ID:          it.ID,
			OrderID:     o.ID,
			Description: it.Description,
			Status:      string(it.Status),
			TotalPrice:  it.TotalPrice,
			Quantidade:  it.Quantidade,
		})
	}
	return m
}

func (m ServiceOrderModel) toEntity() entities.ServiceOrder {
	o := entities.ServiceOrder{
		ID:                  m.ID,
		OrderNumber:         m.OrderNumber,
		ClientID:            m.ClientID,
		VehicleID:           m.VehicleID,
		MechanicID:          m.MechanicID,
		Status:              entities.OrderStatus(m.Status),
		Total:               m.Total,
		ProblemDescription:  m.ProblemDescription,
		CreatedAt:           m.CreatedAt,
		CompletedAt:         m.CompletedAt,
		EstimatedCompletion: m.EstimatedCompletion,
	}
	for _, it := range m.Items {
		o.Items = append(o.Items, entities.ServiceOrderItem{
			ID:          it.ID,
			OrderID:     it.OrderID,
			Description: it.Description,
			Status:      entities.ItemStatus(it.Status),
			TotalPrice:  it.TotalPrice,
			Quantidade:  it.Quantidade,
		})
	}
	if m.Client != nil {
		c := m.Client.toEntity()
		o.Client = &c
	}
	if m.Vehicle != nil {
		v := m.Vehicle.toEntity()
		o.Vehicle = &v
	}
	return o
}

func toOrderPaymentModel(p entities.OrderPayment) OrderPaymentModel {
	return OrderPaymentModel{
		ID:           p.ID,
		OrderID:      p.OrderID,
		Amount:       p.Amount,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
	}
}

func (m OrderPaymentModel) toEntity() entities.OrderPayment {
	p := entities.OrderPayment{
		ID:      m.ID,
		OrderID: m.OrderID,
		Amount:  m.Amount,
		Date:    m.Date,
		Status:  entities.PaymentStatus(m.Status),
	}
	if m.MPPayloadRaw != "" {
		p.MPPayloadRaw = json.RawMessage(m.MPPayloadRaw)
		_ = json.Unmarshal(p.MPPayloadRaw, &p.MPPayload)
	}
	return p
}
