package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"msvosa_back_end/internal/database"
	"msvosa_back_end/internal/models"

	"github.com/gocql/gocql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// siteContentKey is the partition key of the single site-content row.
const siteContentKey = "site"

// ScyllaStore persists the association's collections in ScyllaDB.
// The site-content document is stored as one JSON text row, so a save
// replaces the whole document in a single write.
type ScyllaStore struct{}

func NewScyllaStore() *ScyllaStore {
	return &ScyllaStore{}
}

// =============================================
// EVENTS
// =============================================

func (s *ScyllaStore) GetEvents(ctx context.Context) ([]models.Event, error) {
	session, err := database.GetSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT id, title, date, location, description, image FROM events`).
		WithContext(ctx).Iter()

	events := []models.Event{}
	var e models.Event
	for iter.Scan(&e.ID, &e.Title, &e.Date, &e.Location, &e.Description, &e.Image) {
		events = append(events, e)
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("reading events: %v", err)
	}
	return events, nil
}

func (s *ScyllaStore) AddEvent(ctx context.Context, event models.NewEvent) error {
	session, err := database.GetSession()
	if err != nil {
		return err
	}

	id := models.NextID()
	return session.Query(`INSERT INTO events (id, title, date, location, description, image) VALUES (?, ?, ?, ?, ?, ?)`,
		id, event.Title, event.Date, event.Location, event.Description, event.Image).
		WithContext(ctx).Exec()
}

func (s *ScyllaStore) DeleteEvent(ctx context.Context, id int64) error {
	session, err := database.GetSession()
	if err != nil {
		return err
	}
	return session.Query(`DELETE FROM events WHERE id = ?`, id).WithContext(ctx).Exec()
}

// =============================================
// SITE CONTENT (single atomic document)
// =============================================

func (s *ScyllaStore) GetSiteContent(ctx context.Context) (models.SiteContent, error) {
	session, err := database.GetSession()
	if err != nil {
		return models.SiteContent{}, err
	}

	var raw string
	err = session.Query(`SELECT content FROM site_content WHERE doc_key = ?`, siteContentKey).
		WithContext(ctx).Scan(&raw)
	if err == gocql.ErrNotFound {
		// Fresh deployment: serve the seed content until the first publish.
		return models.DefaultSiteContent(), nil
	}
	if err != nil {
		return models.SiteContent{}, fmt.Errorf("reading site content: %v", err)
	}

	var content models.SiteContent
	if err := json.Unmarshal([]byte(raw), &content); err != nil {
		return models.SiteContent{}, fmt.Errorf("decoding site content: %v", err)
	}
	return content, nil
}

func (s *ScyllaStore) SaveSiteContent(ctx context.Context, content models.SiteContent) error {
	session, err := database.GetSession()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("encoding site content: %v", err)
	}
	return session.Query(`INSERT INTO site_content (doc_key, content) VALUES (?, ?)`,
		siteContentKey, string(raw)).WithContext(ctx).Exec()
}

// =============================================
// MEMBERS (alumni directory)
// =============================================

func (s *ScyllaStore) GetMembers(ctx context.Context) ([]models.Alumni, error) {
	session, err := database.GetSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT id, name, graduation_year, profession, location, email FROM members`).
		WithContext(ctx).Iter()

	members := []models.Alumni{}
	var (
		id gocql.UUID
		m  models.Alumni
	)
	for iter.Scan(&id, &m.Name, &m.GraduationYear, &m.Profession, &m.Location, &m.Email) {
		m.ID = id.String()
		members = append(members, m)
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("reading members: %v", err)
	}
	return members, nil
}

func (s *ScyllaStore) AddMember(ctx context.Context, member models.NewAlumni) error {
	session, err := database.GetSession()
	if err != nil {
		return err
	}

	id := gocql.UUID(uuid.New())
	return session.Query(`INSERT INTO members (id, name, graduation_year, profession, location, email) VALUES (?, ?, ?, ?, ?, ?)`,
		id, member.Name, member.GraduationYear, member.Profession, member.Location, member.Email).
		WithContext(ctx).Exec()
}

func (s *ScyllaStore) DeleteMember(ctx context.Context, id string) error {
	session, err := database.GetSession()
	if err != nil {
		return err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid member id %q: %v", id, err)
	}
	return session.Query(`DELETE FROM members WHERE id = ?`, gocql.UUID(parsed)).
		WithContext(ctx).Exec()
}

// =============================================
// ORDERS
// =============================================

func (s *ScyllaStore) GetOrders(ctx context.Context) ([]models.Order, error) {
	session, err := database.GetSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT id, customer_name, customer_email, customer_phone, items, total_amount, status, date FROM orders`).
		WithContext(ctx).Iter()

	orders := []models.Order{}
	var (
		o           models.Order
		itemsRaw    string
		totalAmount string
	)
	for iter.Scan(&o.ID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone, &itemsRaw, &totalAmount, &o.Status, &o.Date) {
		o.Items = []models.CartItem{}
		if itemsRaw != "" {
			if err := json.Unmarshal([]byte(itemsRaw), &o.Items); err != nil {
				return nil, fmt.Errorf("decoding items of order %d: %v", o.ID, err)
			}
		}
		amount, err := decimal.NewFromString(totalAmount)
		if err != nil {
			return nil, fmt.Errorf("decoding total of order %d: %v", o.ID, err)
		}
		o.TotalAmount = amount
		orders = append(orders, o)
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("reading orders: %v", err)
	}
	return orders, nil
}

func (s *ScyllaStore) AddOrder(ctx context.Context, order models.NewOrder) (models.Order, error) {
	session, err := database.GetSession()
	if err != nil {
		return models.Order{}, err
	}

	itemsRaw, err := json.Marshal(order.Items)
	if err != nil {
		return models.Order{}, fmt.Errorf("encoding order items: %v", err)
	}

	created := models.Order{
		ID:            models.NextID(),
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		CustomerPhone: order.CustomerPhone,
		Items:         order.Items,
		TotalAmount:   order.TotalAmount,
		Status:        order.Status,
		Date:          time.Now().Format("02/01/2006"),
	}

	err = session.Query(`INSERT INTO orders (id, customer_name, customer_email, customer_phone, items, total_amount, status, date) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		created.ID, created.CustomerName, created.CustomerEmail, created.CustomerPhone,
		string(itemsRaw), created.TotalAmount.String(), created.Status, created.Date).
		WithContext(ctx).Exec()
	if err != nil {
		return models.Order{}, err
	}
	return created, nil
}

func (s *ScyllaStore) UpdateOrderStatus(ctx context.Context, id int64, status string) error {
	session, err := database.GetSession()
	if err != nil {
		return err
	}

	// IF EXISTS keeps a plain UPDATE from upserting a phantom row for
	// an unknown id.
	applied, err := session.Query(`UPDATE orders SET status = ? WHERE id = ? IF EXISTS`, status, id).
		WithContext(ctx).MapScanCAS(map[string]interface{}{})
	if err != nil {
		return err
	}
	if !applied {
		return fmt.Errorf("%w: order %d", ErrNotFound, id)
	}
	return nil
}

func (s *ScyllaStore) DeleteOrder(ctx context.Context, id int64) error {
	session, err := database.GetSession()
	if err != nil {
		return err
	}
	return session.Query(`DELETE FROM orders WHERE id = ?`, id).WithContext(ctx).Exec()
}
