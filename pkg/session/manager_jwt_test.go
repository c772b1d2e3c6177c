package session

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
)

var testTime = time.Date(2999, 11, 17, 20, 34, 58, 0, time.UTC)
var testTimeExpired = time.Date(1999, 11, 17, 20, 34, 58, 0, time.UTC)

func NewTestSessionManager(t *testing.T) *SessionManagerJWT {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 1024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	privatePEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})

	publicBytes, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	publicPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: publicBytes,
	})

	sm, err := NewSessionsJWTManager(privatePEM, publicPEM)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	return sm
}

func TestCreateCheckJWT(t *testing.T) {
	sm := NewTestSessionManager(t)

	ctx := context.Background()
	w := httptest.NewRecorder()
	u := &User{Username: "gopher", ID: 34}
	sessID := "480f0886-bbbb-40e8-9c2b-a47e8aa7a666"

	token, err := sm.Create(ctx, w, u, sessID, testTime.Unix())
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	sess, err := sm.Check(ctx, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	expected := &Session{
		User:           &User{ID: 34, Username: "gopher"},
		SessionID:      sessID,
		StandardClaims: jwt.StandardClaims{ExpiresAt: testTime.Unix()},
	}
	if !reflect.DeepEqual(sess, expected) {
		t.Errorf("test fail, expected %v but was %v", expected, sess)
	}
}

func TestCheckJWTExpired(t *testing.T) {
	sm := NewTestSessionManager(t)

	ctx := context.Background()
	w := httptest.NewRecorder()
	u := &User{Username: "gopher", ID: 34}

	token, err := sm.Create(ctx, w, u, "sess-1", testTimeExpired.Unix())
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	_, err = sm.Check(ctx, r)
	if err == nil {
		t.Fatal("expected expired token error, but was nil")
	}

	verr, ok := err.(*jwt.ValidationError)
	if !ok {
		t.Fatalf("expected jwt validation error, but was %v", err)
	}

	if verr.Errors&jwt.ValidationErrorExpired != jwt.ValidationErrorExpired {
		t.Fatalf("expected jwt expired error, but was %v", verr.Errors)
	}
}

func TestCheckJWTBadToken(t *testing.T) {
	sm := NewTestSessionManager(t)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer not-a-token")

	_, err := sm.Check(context.Background(), r)
	if err == nil {
		t.Fatal("expected parse error, but was nil")
	}
}
