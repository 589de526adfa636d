package reminder

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Name string

const (
	NameEyes  Name = "eyes"
	NameWater Name = "water"
)

// Reminder is a fixed message repeated every Every.
type Reminder struct {
	Name  Name
	Title string
	Body  string
	Every time.Duration
}

func (r Reminder) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Body, validation.Required),
		validation.Field(&r.Every, validation.Min(0)),
	)
}

func Eyes(every time.Duration) Reminder {
	return Reminder{
		Name:  NameEyes,
		Title: "Eye break 👀",
		Body:  "Look away for ~20s. 20-20-20 rule!",
		Every: every,
	}
}

func Water(every time.Duration) Reminder {
	return Reminder{
		Name:  NameWater,
		Title: "Hydration 💧",
		Body:  "Drink a few sips of water.",
		Every: every,
	}
}
