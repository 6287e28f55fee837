// Package article provides HTTP handlers for the article workflow: submission,
// moderation, public listings and view counting.
package article

import (
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/utils/text"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	ImageURL      string    `json:"image_url,omitempty"`
	Publisher     string    `json:"publisher"`
	Tags          []string  `json:"tags"`
	Description   string    `json:"description,omitempty"`
	AuthorEmail   string    `json:"author_email"`
	AuthorName    string    `json:"author_name"`
	AuthorPhoto   string    `json:"author_photo,omitempty"`
	Status        string    `json:"status"`
	DeclineReason *string   `json:"decline_reason,omitempty"`
	IsPremium     bool      `json:"is_premium"`
	ViewCount     int64     `json:"view_count"`
	WordCount     int       `json:"word_count"`
	ReadingTime   int       `json:"reading_time_minutes"`
	CreatedAt     time.Time `json:"created_at"`
}

func toDTO(a *entity.Article) DTO {
	return DTO{
		ID:            a.ID,
		Title:         a.Title,
		ImageURL:      a.ImageURL,
		Publisher:     a.Publisher,
		Tags:          a.Tags,
		Description:   a.Description,
		AuthorEmail:   a.AuthorEmail,
		AuthorName:    a.AuthorName,
		AuthorPhoto:   a.AuthorPhoto,
		Status:        string(a.Status),
		DeclineReason: a.DeclineReason,
		IsPremium:     a.IsPremium,
		ViewCount:     a.ViewCount,
		WordCount:     text.CountWords(a.Description),
		ReadingTime:   text.ReadingMinutes(a.Description),
		CreatedAt:     a.CreatedAt,
	}
}

func toDTOs(articles []*entity.Article) []DTO {
	dtos := make([]DTO, 0, len(articles))
	for _, a := range articles {
		dtos = append(dtos, toDTO(a))
	}
	return dtos
}
