package client

import (
	"context"
	"fmt"
	"net/http"
)

// Employee is the wire shape echoed by the employee service.
type Employee struct {
	StaffID          int64  `json:"staff_id"`
	StaffFName       string `json:"staff_fname"`
	StaffLName       string `json:"staff_lname"`
	Dept             string `json:"dept"`
	Position         string `json:"position"`
	Country          string `json:"country"`
	Email            string `json:"email"`
	ReportingManager *int64 `json:"reporting_manager"`
	Role             int64  `json:"role"`
}

// EmployeeClient talks to the employee directory service.
type EmployeeClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewEmployeeClient(baseURL string) *EmployeeClient {
	return &EmployeeClient{baseURL: baseURL, httpClient: http.DefaultClient}
}

func (c *EmployeeClient) TeamMembers(ctx context.Context, managerID int64) ([]Employee, error) {
	var wrapper struct {
		Members []Employee `json:"members"`
	}
	url := fmt.Sprintf("%s/employee/%d/team", c.baseURL, managerID)
	if err := do(ctx, c.httpClient, http.MethodGet, url, nil, &wrapper); err != nil {
		return nil, err
	}
	return wrapper.Members, nil
}

func (c *EmployeeClient) ListByDept(ctx context.Context, dept string) ([]Employee, error) {
	var wrapper struct {
		Employees []Employee `json:"employee"`
	}
	url := fmt.Sprintf("%s/employee/%s/get_by_dept", c.baseURL, dept)
	if err := do(ctx, c.httpClient, http.MethodGet, url, nil, &wrapper); err != nil {
		return nil, err
	}
	return wrapper.Employees, nil
}
