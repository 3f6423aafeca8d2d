package employee

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/pulsehr/pulse-backend-go/internal/domain/employee"
	"github.com/pulsehr/pulse-backend-go/internal/pkg/database"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:                  emp.ID,
		FullName:            emp.FullName,
		Email:               emp.Email,
		Position:            emp.Position,
		PhoneNumber:         emp.PhoneNumber,
		AvatarURL:           emp.AvatarURL,
		StandardShiftStart:  emp.StandardShiftStart,
		StandardShiftEnd:    emp.StandardShiftEnd,
		StandardHoursPerDay: emp.StandardHoursPerDay,
		JoinDate:            emp.JoinDate.Format("2006-01-02"),
		IsAdmin:             emp.IsAdmin,
		IsActive:            emp.IsActive,
		CreatedAt:           emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           emp.UpdatedAt.Format(time.RFC3339),
	}
}

// Create implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	_, err := e.EmployeeRepository.GetByEmail(ctx, req.Email)
	if err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}
	if !errors.Is(err, pgx.ErrNoRows) && !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	joinDate, _ := time.Parse("2006-01-02", req.JoinDate)

	emp := employee.Employee{
		FullName:            req.FullName,
		Email:               req.Email,
		PasswordHash:        string(passwordHash),
		Position:            req.Position,
		PhoneNumber:         req.PhoneNumber,
		StandardShiftStart:  req.StandardShiftStart,
		StandardShiftEnd:    req.StandardShiftEnd,
		StandardHoursPerDay: req.StandardHoursPerDay,
		JoinDate:            joinDate,
		IsAdmin:             req.IsAdmin,
		IsActive:            true,
	}

	created, err := e.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return toEmployeeResponse(created), nil
}

// Get implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := e.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(emp), nil
}

// GetMyProfile implements employee.EmployeeService.
func (e *EmployeeServiceImpl) GetMyProfile(ctx context.Context) (employee.EmployeeResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return employee.EmployeeResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	return e.Get(ctx, employeeID)
}

// List implements employee.EmployeeService.
func (e *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeesResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	employees, totalCount, err := e.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeesResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toEmployeeResponse(emp))
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(filter.Limit)))

	return employee.ListEmployeesResponse{
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Employees:  responses,
	}, nil
}

// Update implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := e.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Position != nil {
		emp.Position = req.Position
	}
	if req.PhoneNumber != nil {
		emp.PhoneNumber = req.PhoneNumber
	}
	if req.StandardShiftStart != nil {
		emp.StandardShiftStart = *req.StandardShiftStart
	}
	if req.StandardShiftEnd != nil {
		emp.StandardShiftEnd = *req.StandardShiftEnd
	}
	if req.StandardHoursPerDay != nil {
		emp.StandardHoursPerDay = *req.StandardHoursPerDay
	}
	if req.IsAdmin != nil {
		emp.IsAdmin = *req.IsAdmin
	}

	if err := e.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return toEmployeeResponse(emp), nil
}

// Deactivate implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	if _, err := e.EmployeeRepository.GetByID(ctx, id); err != nil {
		return err
	}

	if err := e.EmployeeRepository.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}

	return nil
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepo,
	}
}
