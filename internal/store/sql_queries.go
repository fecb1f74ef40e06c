package store

const (
	producerColumns = `id, full_name, email, password_hash, farm_name, phone, language_preference,
		is_active, email_verified, status, created_at, updated_at`

	createProducer = `INSERT INTO producers (full_name, email, password_hash, farm_name, phone, language_preference)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + producerColumns + `;`

	findProducerByEmail = `SELECT ` + producerColumns + `
		FROM producers
		WHERE email = $1;`

	findProducerByID = `SELECT ` + producerColumns + `
		FROM producers
		WHERE id = $1;`

	deleteProducer = `DELETE FROM producers WHERE id = $1;`

	lotColumns = `id, producer_id, lot_code, product_name, crop_type, estimated_quantity, unit_of_measure,
		estimated_harvest_date, actual_harvest_date, current_status, additional_description,
		location_x, location_y, created_at, updated_at`

	createLot = `INSERT INTO lots (producer_id, lot_code, product_name, crop_type, estimated_quantity,
			unit_of_measure, estimated_harvest_date, additional_description, location_x, location_y)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + lotColumns + `;`

	findLotByID = `SELECT ` + lotColumns + `
		FROM lots
		WHERE id = $1;`

	deleteLot = `DELETE FROM lots WHERE id = $1;`

	eventColumns = `id, lot_id, event_type, description, event_location, coordinates_x, coordinates_y,
		metadata, created_at`

	createEvent = `INSERT INTO events (lot_id, event_type, description, event_location, coordinates_x, coordinates_y, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + eventColumns + `;`

	findEventByID = `SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1;`

	listEventsByLot = `SELECT ` + eventColumns + `
		FROM events
		WHERE lot_id = $1
		ORDER BY created_at;`

	deleteEvent = `DELETE FROM events WHERE id = $1;`

	notificationColumns = `id, producer_id, title, message, notification_type, is_read, metadata, created_at`

	createNotification = `INSERT INTO notifications (producer_id, title, message, notification_type, metadata)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + notificationColumns + `;`

	findNotificationByID = `SELECT ` + notificationColumns + `
		FROM notifications
		WHERE id = $1;`

	deleteNotification = `DELETE FROM notifications WHERE id = $1;`

	markAllNotificationsRead = `UPDATE notifications SET is_read = TRUE WHERE producer_id = $1;`
)
