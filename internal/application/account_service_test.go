package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"usertaskapi/pkg/helpers"
)

func newAccountService(users *fakeUserRepo) *AccountService {
	tokens := helpers.NewTokenIssuer("test-secret", "usertask-api", time.Hour)
	return NewAccountService(users, tokens, nil)
}

func TestRegisterAndLogin(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAccountService(users)
	ctx := context.Background()

	if err := svc.Register(ctx, "Ann", "ann@x.com", "secret1"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	u, err := users.GetByEmail(ctx, "ann@x.com")
	if err != nil || u == nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if u.PasswordHash == "secret1" || u.PasswordHash == "" {
		t.Error("password stored without hashing")
	}

	token, exp, err := svc.Login(ctx, "ann@x.com", "secret1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" || exp.Before(time.Now()) {
		t.Error("login returned no usable token")
	}

	// Token carries the registered user's identity.
	claims, err := svc.Tokens.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	uid, _ := claims.UserID()
	if uid != u.ID {
		t.Errorf("token subject: got %d, want %d", uid, u.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAccountService(newFakeUserRepo())
	ctx := context.Background()

	if err := svc.Register(ctx, "Ann", "ann@x.com", "secret1"); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if err := svc.Register(ctx, "Other Ann", "ann@x.com", "different"); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("second Register: got %v, want ErrEmailTaken", err)
	}
}

func TestRegisterEmailIsExactMatch(t *testing.T) {
	svc := newAccountService(newFakeUserRepo())
	ctx := context.Background()

	if err := svc.Register(ctx, "Ann", "ann@x.com", "secret1"); err != nil {
		t.Fatal(err)
	}
	// Different casing is a different email.
	if err := svc.Register(ctx, "Ann", "Ann@x.com", "secret1"); err != nil {
		t.Errorf("case-variant email rejected: %v", err)
	}
}

func TestLoginIndistinguishableFailures(t *testing.T) {
	svc := newAccountService(newFakeUserRepo())
	ctx := context.Background()

	if err := svc.Register(ctx, "Ann", "ann@x.com", "secret1"); err != nil {
		t.Fatal(err)
	}

	_, _, wrongPwd := svc.Login(ctx, "ann@x.com", "wrong")
	_, _, unknownEmail := svc.Login(ctx, "nobody@x.com", "secret1")

	if !errors.Is(wrongPwd, ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v", wrongPwd)
	}
	if !errors.Is(unknownEmail, ErrInvalidCredentials) {
		t.Errorf("unknown email: got %v", unknownEmail)
	}
	if wrongPwd.Error() != unknownEmail.Error() {
		t.Error("failure modes are distinguishable")
	}
}

func TestGetUserByIDNotFound(t *testing.T) {
	svc := newAccountService(newFakeUserRepo())
	if _, err := svc.GetUserByID(context.Background(), 99); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("got %v, want ErrUserNotFound", err)
	}
}

func TestListUsersWithTasks(t *testing.T) {
	svc := newAccountService(newFakeUserRepo())
	ctx := context.Background()

	for _, u := range []struct{ name, email string }{
		{"Ann", "ann@x.com"},
		{"Bob", "bob@x.com"},
	} {
		if err := svc.Register(ctx, u.name, u.email, "secret1"); err != nil {
			t.Fatal(err)
		}
	}

	got, err := svc.ListUsersWithTasks(ctx)
	if err != nil {
		t.Fatalf("ListUsersWithTasks: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d users, want 2", len(got))
	}
	if got[0].User.Name != "Ann" || got[1].User.Name != "Bob" {
		t.Errorf("unexpected order: %q, %q", got[0].User.Name, got[1].User.Name)
	}
}
