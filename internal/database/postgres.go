package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/daniyar/chatlist/internal/models"
	_ "github.com/lib/pq"
)

func InitDB(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// --- Users ---

func CreateUser(db *sql.DB, username, passwordHash string) (*models.User, error) {
	var u models.User
	err := db.QueryRow(
		`INSERT INTO users (username, password) VALUES ($1, $2)
		 RETURNING id, username, created_at`,
		username, passwordHash,
	).Scan(&u.ID, &u.Username, &u.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &u, nil
}

func GetUserByUsername(db *sql.DB, username string) (*models.User, error) {
	var u models.User
	err := db.QueryRow(
		`SELECT id, username, password, created_at FROM users WHERE username = $1`,
		username,
	).Scan(&u.ID, &u.Username, &u.Password, &u.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

func GetUserByID(db *sql.DB, id string) (*models.User, error) {
	var u models.User
	err := db.QueryRow(
		`SELECT id, username, created_at FROM users WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Username, &u.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// --- Chatrooms ---

func CreateChatroom(db *sql.DB, name, createdBy string) (*models.Chatroom, error) {
	var c models.Chatroom
	err := db.QueryRow(
		`INSERT INTO chatrooms (name, created_by) VALUES ($1, $2)
		 RETURNING id, name, created_by, created_at`,
		name, createdBy,
	).Scan(&c.ID, &c.Name, &c.CreatedBy, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create chatroom: %w", err)
	}
	return &c, nil
}

func GetChatroomByID(db *sql.DB, id string) (*models.Chatroom, error) {
	var c models.Chatroom
	err := db.QueryRow(
		`SELECT id, name, COALESCE(created_by::text, ''), created_at FROM chatrooms WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Name, &c.CreatedBy, &c.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get chatroom: %w", err)
	}
	return &c, nil
}

func AddMember(db *sql.DB, chatroomID, userID string) error {
	_, err := db.Exec(
		`INSERT INTO chatroom_members (chatroom_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		chatroomID, userID,
	)
	return err
}

func RemoveMember(db *sql.DB, chatroomID, userID string) error {
	_, err := db.Exec(
		`DELETE FROM chatroom_members WHERE chatroom_id = $1 AND user_id = $2`,
		chatroomID, userID,
	)
	return err
}

func IsMember(db *sql.DB, chatroomID, userID string) (bool, error) {
	var exists bool
	err := db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM chatroom_members WHERE chatroom_id = $1 AND user_id = $2)`,
		chatroomID, userID,
	).Scan(&exists)
	return exists, err
}
