package store

import (
	"database/sql"

	"github.com/kairos-agro/kairos-server/models"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProducer(row rowScanner) (models.Producer, error) {
	var p models.Producer
	var farmName, phone sql.NullString

	err := row.Scan(
		&p.ID, &p.FullName, &p.Email, &p.PasswordHash,
		&farmName, &phone, &p.LanguagePreference,
		&p.IsActive, &p.EmailVerified, &p.Status,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return models.Producer{}, err
	}

	p.FarmName = nullableString(farmName)
	p.Phone = nullableString(phone)

	return p, nil
}

func scanLot(row rowScanner) (models.Lot, error) {
	var l models.Lot
	var actualHarvest sql.NullTime
	var description sql.NullString
	var locX, locY sql.NullFloat64

	err := row.Scan(
		&l.ID, &l.ProducerID, &l.LotCode, &l.ProductName, &l.CropType,
		&l.EstimatedQuantity, &l.UnitOfMeasure, &l.EstimatedHarvestDate,
		&actualHarvest, &l.CurrentStatus, &description,
		&locX, &locY, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return models.Lot{}, err
	}

	if actualHarvest.Valid {
		l.ActualHarvestDate = &actualHarvest.Time
	}
	l.AdditionalDescription = nullableString(description)
	l.LocationCoordinates = nullablePoint(locX, locY)

	return l, nil
}

func scanEvent(row rowScanner) (models.Event, error) {
	var e models.Event
	var description, location sql.NullString
	var coordX, coordY sql.NullFloat64
	var metadata []byte

	err := row.Scan(
		&e.ID, &e.LotID, &e.EventType, &description, &location,
		&coordX, &coordY, &metadata, &e.CreatedAt,
	)
	if err != nil {
		return models.Event{}, err
	}

	e.Description = nullableString(description)
	e.EventLocation = nullableString(location)
	e.Coordinates = nullablePoint(coordX, coordY)
	e.Metadata = metadata

	return e, nil
}

func scanNotification(row rowScanner) (models.Notification, error) {
	var n models.Notification
	var metadata []byte

	err := row.Scan(
		&n.ID, &n.ProducerID, &n.Title, &n.Message, &n.NotificationType,
		&n.IsRead, &metadata, &n.CreatedAt,
	)
	if err != nil {
		return models.Notification{}, err
	}

	n.Metadata = metadata

	return n, nil
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}

func nullablePoint(x, y sql.NullFloat64) *models.Point {
	if !x.Valid || !y.Valid {
		return nil
	}
	return &models.Point{X: x.Float64, Y: y.Float64}
}

// pointArgs splits an optional coordinate pair into the two nullable column
// arguments used by INSERT statements.
func pointArgs(p *models.Point) (any, any) {
	if p == nil {
		return nil, nil
	}
	return p.X, p.Y
}
