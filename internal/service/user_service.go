package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"brixia-rugby/backend/internal/dto"
	"brixia-rugby/backend/internal/model"
	"brixia-rugby/backend/internal/repository"
)

var (
	ErrEmailExists        = errors.New("email already registered")
	ErrUserSelfRoleChange = errors.New("you cannot change your own role")
	ErrUserSelfDelete     = errors.New("you cannot delete your own account")
)

// UserService account administration
type UserService interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest, callerID string) (*dto.CreateUserResponse, error)
	GetByID(ctx context.Context, id string) (*dto.UserResponse, error)
	List(ctx context.Context, req *dto.UserListRequest) ([]dto.UserResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateUserRequest, callerID string) (*dto.UserResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
	AssignRole(ctx context.Context, id string, req *dto.AssignRoleRequest, callerID string) error
	ResetPassword(ctx context.Context, id string, callerID string) (*dto.ResetPasswordResponse, error)
	ParseImportFile(reader io.Reader) ([]ImportUserRow, error)
	ImportUsers(ctx context.Context, rows []ImportUserRow, callerID string) (*dto.ImportUserResponse, error)
}

// ImportUserRow one parsed spreadsheet row
type ImportUserRow struct {
	Row   int
	Name  string
	Email string
	Role  string
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService creates a UserService.
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

// ────────────────────── CreateUser ──────────────────────

func (s *userService) CreateUser(ctx context.Context, req *dto.CreateUserRequest, callerID string) (*dto.CreateUserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.ensureEmailFree(ctx, email, ""); err != nil {
		return nil, err
	}

	user, tempPassword, err := s.newAccount(strings.TrimSpace(req.Name), email, req.Role, callerID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("create user failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("user created", zap.String("user_id", user.UserID), zap.String("role", user.Role))
	return &dto.CreateUserResponse{User: toUserResponse(user), TempPassword: tempPassword}, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *userService) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// ────────────────────── List ──────────────────────

func (s *userService) List(ctx context.Context, req *dto.UserListRequest) ([]dto.UserResponse, int64, error) {
	filters := &repository.UserListFilters{
		Role:    req.Role,
		Keyword: strings.TrimSpace(req.Keyword),
	}

	users, total, err := s.repo.User.List(ctx, filters, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("list users failed", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, toUserResponse(&users[i]))
	}
	return result, total, nil
}

// ────────────────────── Update ──────────────────────

func (s *userService) Update(ctx context.Context, id string, req *dto.UpdateUserRequest, callerID string) (*dto.UserResponse, error) {
	user, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if err := s.ensureEmailFree(ctx, email, id); err != nil {
			return nil, err
		}
		user.Email = email
	}
	user.UpdatedBy = &callerID

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("update user failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// ────────────────────── Delete ──────────────────────

func (s *userService) Delete(ctx context.Context, id string, callerID string) error {
	if id == callerID {
		return ErrUserSelfDelete
	}
	if _, err := s.get(ctx, id); err != nil {
		return err
	}

	if err := s.repo.User.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("delete user failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── AssignRole ──────────────────────

func (s *userService) AssignRole(ctx context.Context, id string, req *dto.AssignRoleRequest, callerID string) error {
	if id == callerID {
		return ErrUserSelfRoleChange
	}

	user, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	user.Role = req.Role
	user.UpdatedBy = &callerID
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("assign role failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── ResetPassword ──────────────────────

func (s *userService) ResetPassword(ctx context.Context, id string, callerID string) (*dto.ResetPasswordResponse, error) {
	user, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	tempPassword, err := generateTempPassword(10)
	if err != nil {
		s.logger.Error("generate temp password failed", zap.Error(err))
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = string(hash)
	user.MustChangePassword = true
	user.UpdatedBy = &callerID
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("reset password failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return &dto.ResetPasswordResponse{TempPassword: tempPassword}, nil
}

// ────────────────────── ParseImportFile ──────────────────────

const maxImportRows = 500

var (
	ErrImportNoData      = errors.New("spreadsheet has no data rows below the header")
	ErrImportTooManyRows = fmt.Errorf("spreadsheet exceeds %d rows", maxImportRows)
	ErrImportBadHeader   = errors.New("spreadsheet header must contain name and email columns")
)

// ParseImportFile reads the first sheet of an XLSX file. Header names are
// matched case-insensitively in English or Italian; column order is free.
func (s *userService) ParseImportFile(reader io.Reader) ([]ImportUserRow, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	excelRows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}
	if len(excelRows) < 2 {
		return nil, ErrImportNoData
	}

	col := parseHeaderIndex(excelRows[0])
	if col["name"] < 0 || col["email"] < 0 {
		return nil, ErrImportBadHeader
	}

	cell := func(row []string, key string) string {
		idx := col[key]
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var rows []ImportUserRow
	for i := 1; i < len(excelRows); i++ {
		item := ImportUserRow{
			Row:   i + 1,
			Name:  cell(excelRows[i], "name"),
			Email: cell(excelRows[i], "email"),
			Role:  strings.ToLower(cell(excelRows[i], "role")),
		}
		if item.Name == "" && item.Email == "" && item.Role == "" {
			continue
		}
		rows = append(rows, item)
	}

	if len(rows) == 0 {
		return nil, ErrImportNoData
	}
	if len(rows) > maxImportRows {
		return nil, ErrImportTooManyRows
	}
	return rows, nil
}

func parseHeaderIndex(header []string) map[string]int {
	idx := map[string]int{"name": -1, "email": -1, "role": -1}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "name", "nome":
			idx["name"] = i
		case "email", "e-mail":
			idx["email"] = i
		case "role", "ruolo":
			idx["role"] = i
		}
	}
	return idx
}

// ────────────────────── ImportUsers ──────────────────────

// ImportUsers validates every row first, then creates the accepted ones.
// A row failing validation is reported and does not block the others.
func (s *userService) ImportUsers(ctx context.Context, rows []ImportUserRow, callerID string) (*dto.ImportUserResponse, error) {
	resp := &dto.ImportUserResponse{Total: len(rows)}
	fail := func(row int, reason string) {
		resp.Failed++
		resp.Errors = append(resp.Errors, dto.ImportUserError{Row: row, Reason: reason})
	}

	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		email := strings.ToLower(row.Email)
		role := row.Role
		if role == "" {
			role = model.RoleStaff
		}

		switch {
		case row.Name == "" || email == "":
			fail(row.Row, "name and email are required")
			continue
		case !strings.Contains(email, "@"):
			fail(row.Row, fmt.Sprintf("invalid email: %s", row.Email))
			continue
		case !model.IsValidRole(role):
			fail(row.Row, fmt.Sprintf("unknown role: %s", row.Role))
			continue
		case seen[email]:
			fail(row.Row, fmt.Sprintf("email repeated in file: %s", email))
			continue
		}
		seen[email] = true

		if err := s.ensureEmailFree(ctx, email, ""); err != nil {
			if errors.Is(err, ErrEmailExists) {
				fail(row.Row, fmt.Sprintf("email already registered: %s", email))
				continue
			}
			return nil, err
		}

		user, tempPassword, err := s.newAccount(row.Name, email, role, callerID)
		if err != nil {
			fail(row.Row, "password hashing failed")
			continue
		}
		if err := s.repo.User.Create(ctx, user); err != nil {
			s.logger.Error("import user failed", zap.Int("row", row.Row), zap.Error(err))
			fail(row.Row, "database write failed")
			continue
		}

		resp.Success++
		resp.Created = append(resp.Created, dto.CreateUserResponse{User: toUserResponse(user), TempPassword: tempPassword})
	}

	s.logger.Info("user import finished",
		zap.Int("total", resp.Total), zap.Int("success", resp.Success), zap.Int("failed", resp.Failed))
	return resp, nil
}

// ────────────────────── helpers ──────────────────────

func (s *userService) get(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("lookup user failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return user, nil
}

// ensureEmailFree rejects an email owned by any account other than selfID.
func (s *userService) ensureEmailFree(ctx context.Context, email, selfID string) error {
	existing, err := s.repo.User.GetByEmail(ctx, email)
	if err == nil {
		if existing.UserID != selfID {
			return ErrEmailExists
		}
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func (s *userService) newAccount(name, email, role, callerID string) (*model.User, string, error) {
	tempPassword, err := generateTempPassword(10)
	if err != nil {
		return nil, "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Name:               name,
		Email:              email,
		PasswordHash:       string(hash),
		Role:               role,
		MustChangePassword: true,
	}
	user.CreatedBy = &callerID
	return user, tempPassword, nil
}

// generateTempPassword returns a random password with at least one letter
// and one digit. Ambiguous glyphs (0, O, 1, l, I) are left out.
func generateTempPassword(length int) (string, error) {
	const letters = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"
	const digits = "23456789"
	const all = letters + digits

	if length < 8 {
		length = 8
	}

	pick := func(set string) (byte, error) {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
		if err != nil {
			return 0, err
		}
		return set[n.Int64()], nil
	}

	result := make([]byte, length)
	var err error
	if result[0], err = pick(letters); err != nil {
		return "", err
	}
	if result[1], err = pick(digits); err != nil {
		return "", err
	}
	for i := 2; i < length; i++ {
		if result[i], err = pick(all); err != nil {
			return "", err
		}
	}

	// Fisher-Yates
	for i := length - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", err
		}
		result[i], result[j.Int64()] = result[j.Int64()], result[i]
	}
	return string(result), nil
}
