package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/herbtrace/pkg/types"
)

const ClaimsKey = "claims"

var ErrNoSession = errors.New("farmer claims not found in context")

var GetClaimsFromContext = func(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, ErrNoSession
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid farmer claims type")
	}
	return claims, nil
}

var GetFarmerIDFromContext = func(c *gin.Context) (uint, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return 0, err
	}
	return claims.FarmerID, nil
}
