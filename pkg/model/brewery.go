package model

import (
	"strconv"

	"github.com/google/uuid"
)

// UnknownBreweryID marks a sake whose record carried no usable brewery reference.
var UnknownBreweryID = uuid.Nil

type Brewery struct {
	ID           uuid.UUID
	NameJapanese string
	NameEnglish  string
	Prefecture   string
	Region       string
	Established  *int
	Description  string
	ImageURL     string
	HeroImageURL string
	SakeCount    int
	TotalRatings int
	Website      *string
	Email        *string
	Phone        *string
}

func (b Brewery) DisplayName() string {
	return preferNonEmpty(b.NameEnglish, b.NameJapanese)
}

func (b Brewery) FormattedEstablished() string {
	if b.Established == nil {
		return "N/A"
	}

	return "Est. " + strconv.Itoa(*b.Established)
}
