package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/edunexus/edunexus-backend/internal/app/models"
)

func newTestJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    exp,
		TokenIssuer: "edunexus.test",
	})
}

func newTestUser() *models.User {
	return &models.User{
		ID:        primitive.NewObjectID(),
		Email:     "a@b.com",
		FirstName: "A",
		LastName:  "B",
		Role:      models.RoleStudent,
	}
}

func TestGenerateToken_RoundTrip(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	user := newTestUser()

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, string(models.RoleStudent), claims.Role)
	assert.Equal(t, user.ID.Hex(), claims.Subject)
	assert.Equal(t, "edunexus.test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestJWTService(-time.Minute)
	token, err := svc.GenerateToken(newTestUser())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	token, err := svc.GenerateToken(newTestUser())
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{
		SecretKey:   "different-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "edunexus.test",
	})

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Tampered(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	token, err := svc.GenerateToken(newTestUser())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestValidateAndExtractClaims_Empty(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	_, err := svc.ValidateAndExtractClaims("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer prefix", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
		{name: "missing prefix", header: "abc.def.ghi", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
