package models

import "time"

// User represents a user in the system. Users are usually created
// explicitly, but a stub row may also appear as a side effect of creating
// a collection or recommendation for an unknown user id.
type User struct {
	ID             int64     `json:"id"`
	Fname          string    `json:"fname"`
	Sname          string    `json:"sname"`
	Email          string    `json:"email"`
	ProfilePicture string    `json:"profile_picture"`
	Bio            string    `json:"bio"`
	CreatedAt      time.Time `json:"created_at"`
}

// Collection is a named, user-owned list referencing zero or more
// recommendations. RecommendationIDs is ordered and duplicate-free.
type Collection struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"user_id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Category          string    `json:"category"`
	Pictures          []string  `json:"pictures"`
	RecommendationIDs []int64   `json:"recommendation_ids"`
	CreatedAt         time.Time `json:"created_at"`
}

// Recommendation is a user-owned content item that collections can reference
type Recommendation struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Caption   string    `json:"caption"`
	Category  string    `json:"category"`
	Pictures  []string  `json:"pictures"`
	CreatedAt time.Time `json:"created_at"`
}
