package types

import "github.com/golang-jwt/jwt/v5"

// Claims is the farmer session carried in the token cookie.
type Claims struct {
	FarmerID uint   `json:"farmer_id"`
	Phone    string `json:"phone"`
	Name     string `json:"name"`
	jwt.RegisteredClaims
}
