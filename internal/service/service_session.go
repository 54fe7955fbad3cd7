package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dicerhq/dicer-admin/internal/config"
	"github.com/dicerhq/dicer-admin/internal/logger"
	"github.com/dicerhq/dicer-admin/internal/store"
	"github.com/dicerhq/dicer-admin/internal/utils"
	"github.com/dicerhq/dicer-admin/models"
	"golang.org/x/crypto/bcrypt"
)

// sessionService is the concrete implementation of SessionService.
// It handles the single-admin console login and the end-user device login,
// both backed by HMAC-SHA256 JWT tokens.
type sessionService struct {
	accountRepository store.AccountRepository
	ledgerRepository  store.LedgerRepository

	// adminEmail is the only identity accepted by the console login.
	adminEmail string

	// adminPasswordHash is the bcrypt hash the console password is checked
	// against. The plaintext admin password is never stored.
	adminPasswordHash string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewSessionService constructs a SessionService wired to the given
// repositories and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewSessionService(accountRepository store.AccountRepository, ledgerRepository store.LedgerRepository, cfg config.Auth, logger *logger.Logger) SessionService {
	return &sessionService{
		accountRepository: accountRepository,
		ledgerRepository:  ledgerRepository,
		adminEmail:        cfg.AdminEmail,
		adminPasswordHash: cfg.AdminPasswordHash,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// AdminLogin authenticates the administrator and issues a console token.
//
// Every failure path returns ErrAdminInvalid so the response does not reveal
// whether the email or the password was wrong.
func (s *sessionService) AdminLogin(ctx context.Context, email, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return models.Token{}, ErrAdminInvalid
	}

	if !strings.EqualFold(email, s.adminEmail) {
		log.Warn().Str("email", email).Msg("admin login rejected: unknown email")
		return models.Token{}, ErrAdminInvalid
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(password)); err != nil {
		log.Warn().Str("email", email).Msg("admin login rejected: wrong password")
		return models.Token{}, ErrAdminInvalid
	}

	token, err := utils.GenerateAdminJWT(s.tokenIssuer, s.adminEmail, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		log.Err(err).Msg("admin token creation failed")
		return models.Token{}, ErrTokenCreationFailed
	}

	log.Info().Str("email", s.adminEmail).Msg("admin logged in")
	return token, nil
}

// VerifyAdminToken validates a console token.
//
// Any validation failure (expired, wrong issuer, malformed, user token
// presented, foreign subject) is normalised to ErrTokenIsExpiredOrInvalid so
// that callers do not need to inspect low-level JWT errors.
func (s *sessionService) VerifyAdminToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWT(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	// user tokens never grant console access
	if token.TokenType == models.TokenTypeUser {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	if !strings.EqualFold(token.Subject, s.adminEmail) {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// UserLogin authenticates an end user from a device.
//
// Checks run in a fixed order and the first failure wins:
//  1. unknown phone            → ErrUserNotFound
//  2. wrong password           → ErrWrongPassword
//  3. unregistered device      → ErrDeviceNotRegistered
//  4. inactive account         → ErrAccountInactive
//
// Failed attempts against a known account are appended to the login history
// with Success=false; attempts with an unknown phone leave no trace. On
// success the history gets a Success=true entry, the reported location is
// stored on the account, and every bound beacon's last_login_at is stamped.
func (s *sessionService) UserLogin(ctx context.Context, req models.UserLoginRequest) (models.Token, models.Account, error) {
	log := logger.FromContext(ctx)

	if req.Phone == "" || req.Password == "" || req.DeviceID == "" {
		return models.Token{}, models.Account{}, ErrInvalidDataProvided
	}

	account, err := s.accountRepository.FindAccountByPhone(ctx, req.Phone)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return models.Token{}, models.Account{}, ErrUserNotFound
		}
		log.Err(err).Msg("account search by phone failed")
		return models.Token{}, models.Account{}, err
	}

	if account.Password != req.Password {
		s.recordLoginAttempt(ctx, account, req, false)
		return models.Token{}, models.Account{}, ErrWrongPassword
	}

	if !containsFold(account.DeviceIDs, req.DeviceID) {
		s.recordLoginAttempt(ctx, account, req, false)
		return models.Token{}, models.Account{}, ErrDeviceNotRegistered
	}

	if account.Status != models.StatusActive {
		s.recordLoginAttempt(ctx, account, req, false)
		return models.Token{}, models.Account{}, ErrAccountInactive
	}

	token, err := utils.GenerateUserJWT(s.tokenIssuer, account.UserID, account.Phone, account.TokenVersion, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("user_id", account.UserID).Msg("user token creation failed")
		return models.Token{}, models.Account{}, ErrTokenCreationFailed
	}

	s.recordLoginAttempt(ctx, account, req, true)

	if req.Location != "" {
		if locErr := s.accountRepository.UpdateLastRunLocation(ctx, account.UserID, req.Location); locErr != nil {
			log.Warn().Err(locErr).Int64("user_id", account.UserID).Msg("last run location update failed")
		}
	}

	if touchErr := s.ledgerRepository.TouchBleLastLogin(ctx, account.UserID, time.Now()); touchErr != nil {
		log.Warn().Err(touchErr).Int64("user_id", account.UserID).Msg("ble last login stamp failed")
	}

	log.Info().Int64("user_id", account.UserID).Str("device_id", req.DeviceID).Msg("user logged in")
	return token, account, nil
}

// ValidateSession checks an end-user session and returns the account it
// belongs to. When a token is supplied it must be accompanied by the full
// credential triple (phone, password, device id), and every piece has to
// match the account; without a token the triple alone is checked.
//
// Every rejection is ErrUserInvalid: the endpoint gives no hint about which
// check failed.
func (s *sessionService) ValidateSession(ctx context.Context, req models.ValidateRequest) (models.Account, error) {
	if req.Token != "" {
		return s.validateByToken(ctx, req)
	}
	return s.validateByCredentials(ctx, req)
}

func (s *sessionService) validateByToken(ctx context.Context, req models.ValidateRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWT(req.Token, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		return models.Account{}, ErrUserInvalid
	}

	if token.TokenType != models.TokenTypeUser {
		return models.Account{}, ErrUserInvalid
	}

	account, err := s.accountRepository.FindAccountByPhone(ctx, token.Phone)
	if err != nil {
		if !errors.Is(err, store.ErrAccountNotFound) {
			log.Err(err).Msg("account search by phone failed")
		}
		return models.Account{}, ErrUserInvalid
	}

	// a password reset bumps the stored version, expiring this token
	if token.TokenVersion != account.TokenVersion {
		return models.Account{}, ErrUserInvalid
	}

	// the token alone is not enough; the caller must still know the full
	// credential triple
	if req.Phone != account.Phone || req.Password != account.Password {
		return models.Account{}, ErrUserInvalid
	}

	if !containsFold(account.DeviceIDs, req.DeviceID) {
		return models.Account{}, ErrUserInvalid
	}

	if account.Status != models.StatusActive {
		return models.Account{}, ErrUserInvalid
	}

	return account, nil
}

func (s *sessionService) validateByCredentials(ctx context.Context, req models.ValidateRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	if req.Phone == "" || req.Password == "" {
		return models.Account{}, ErrUserInvalid
	}

	account, err := s.accountRepository.FindAccountByPhone(ctx, req.Phone)
	if err != nil {
		if !errors.Is(err, store.ErrAccountNotFound) {
			log.Err(err).Msg("account search by phone failed")
		}
		return models.Account{}, ErrUserInvalid
	}

	if account.Password != req.Password {
		return models.Account{}, ErrUserInvalid
	}

	if account.Status != models.StatusActive {
		return models.Account{}, ErrUserInvalid
	}

	if req.DeviceID != "" && !containsFold(account.DeviceIDs, req.DeviceID) {
		return models.Account{}, ErrUserInvalid
	}

	return account, nil
}

// recordLoginAttempt appends one entry to the login history. History is
// best-effort: a ledger failure is logged and never surfaces to the caller.
func (s *sessionService) recordLoginAttempt(ctx context.Context, account models.Account, req models.UserLoginRequest, success bool) {
	log := logger.FromContext(ctx)

	entry := models.LoginHistory{
		UserID:     account.UserID,
		Phone:      account.Phone,
		UserName:   account.Name,
		DeviceID:   req.DeviceID,
		BleIDs:     account.BleIDs,
		Location:   req.Location,
		LatLong:    req.LatLong,
		Success:    success,
		LoggedInAt: time.Now(),
	}

	if err := s.ledgerRepository.RecordLogin(ctx, entry); err != nil {
		log.Warn().Err(err).Int64("user_id", account.UserID).Msg("login history record failed")
	}
}

// containsFold reports whether target is in items, ignoring letter case.
// Device identifiers are matched this way everywhere sessions are checked.
func containsFold(items []string, target string) bool {
	for _, item := range items {
		if strings.EqualFold(item, target) {
			return true
		}
	}
	return false
}
