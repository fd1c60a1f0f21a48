package models

import "time"

type TaskArgs = map[string]string

// Task is a parsed admin command registering a popular request for
// background refresh.
type Task struct {
	Title     string    `json:"title"`
	Args      TaskArgs  `json:"args"`
	CreatedAt time.Time `json:"created_at"`
}

// RefreshCommand is the kafka message that asks a worker to re-fetch a
// popular request.
type RefreshCommand struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}
