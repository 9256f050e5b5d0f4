package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/poise-dev/poise/internal/models"
	"github.com/poise-dev/poise/internal/notify"
	"github.com/poise-dev/poise/internal/service"
	"github.com/poise-dev/poise/internal/storage/sqlite"
)

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	mux := NewRouter(service.NewProjectService(store), service.NewPersonService(store), notify.NewHub())
	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})
	return server
}

func doJSON(t *testing.T, method, url string, body any, out any) int {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
	}
	return resp.StatusCode
}

// createPerson posts a person and returns the generated ID.
func createPerson(t *testing.T, base string, req service.PersonCreateRequest) int64 {
	t.Helper()

	var result service.Result
	doJSON(t, http.MethodPost, base+"/people", req, &result)
	if !result.Success {
		t.Fatalf("person create failed: %q", result.Message)
	}
	var id int64
	fmt.Sscanf(result.Message, "Person created successfully with ID: %d", &id)
	return id
}

func TestPersonRoutes(t *testing.T) {
	server := setupTestServer(t)

	id := createPerson(t, server.URL, service.PersonCreateRequest{
		Name: "Jane Doe", Phone: "082", Email: "jane@example.com", Role: "customer",
	})

	t.Run("get by id", func(t *testing.T) {
		var person models.Person
		status := doJSON(t, http.MethodGet, fmt.Sprintf("%s/people/%d", server.URL, id), nil, &person)
		if status != http.StatusOK || person.Name != "Jane Doe" {
			t.Errorf("status %d, person %+v", status, person)
		}
	})

	t.Run("get missing id is 404", func(t *testing.T) {
		status := doJSON(t, http.MethodGet, server.URL+"/people/9999", nil, nil)
		if status != http.StatusNotFound {
			t.Errorf("status: got %d, want 404", status)
		}
	})

	t.Run("partial update leaves absent fields alone", func(t *testing.T) {
		var result service.Result
		doJSON(t, http.MethodPut, fmt.Sprintf("%s/people/%d", server.URL, id),
			map[string]string{"phone": "083"}, &result)
		if !result.Success {
			t.Fatalf("update failed: %q", result.Message)
		}

		var person models.Person
		doJSON(t, http.MethodGet, fmt.Sprintf("%s/people/%d", server.URL, id), nil, &person)
		if person.Phone != "083" || person.Email != "jane@example.com" || person.Name != "Jane Doe" {
			t.Errorf("merge broken: %+v", person)
		}
	})

	t.Run("list by role ignores case", func(t *testing.T) {
		var people []models.Person
		doJSON(t, http.MethodGet, server.URL+"/people/role/Customer", nil, &people)
		if len(people) != 1 || people[0].ID != id {
			t.Errorf("unexpected role listing: %+v", people)
		}
	})

	t.Run("search by name", func(t *testing.T) {
		var person models.Person
		status := doJSON(t, http.MethodGet, server.URL+"/people/search?name=Jane+Doe", nil, &person)
		if status != http.StatusOK || person.ID != id {
			t.Errorf("status %d, person %+v", status, person)
		}
	})
}

func TestProjectRoutes(t *testing.T) {
	server := setupTestServer(t)

	customerID := createPerson(t, server.URL, service.PersonCreateRequest{
		Name: "Tladi", Role: "customer",
	})

	var createResult service.Result
	doJSON(t, http.MethodPost, server.URL+"/projects", service.ProjectCreateRequest{
		BuildingType: "House",
		CustomerID:   customerID,
		Deadline:     models.NewDate(2031, 1, 1),
	}, &createResult)
	if !createResult.Success {
		t.Fatalf("project create failed: %q", createResult.Message)
	}
	var projectID int64
	fmt.Sscanf(createResult.Message, "Project created successfully with ID: %d", &projectID)

	t.Run("empty name is derived from building type and customer", func(t *testing.T) {
		var project models.Project
		doJSON(t, http.MethodGet, fmt.Sprintf("%s/projects/%d", server.URL, projectID), nil, &project)
		if project.Name != "House Tladi" {
			t.Errorf("derived name: got %q, want %q", project.Name, "House Tladi")
		}
		if project.CustomerID != customerID {
			t.Errorf("customerID: got %d, want %d", project.CustomerID, customerID)
		}
	})

	t.Run("search by name ignores case", func(t *testing.T) {
		var project models.Project
		status := doJSON(t, http.MethodGet, server.URL+"/projects/search?name=house+tladi", nil, &project)
		if status != http.StatusOK || project.ID != projectID {
			t.Errorf("status %d, project %+v", status, project)
		}
	})

	t.Run("finalise succeeds once then is rejected", func(t *testing.T) {
		var result service.Result
		doJSON(t, http.MethodPost, fmt.Sprintf("%s/projects/%d/finalise", server.URL, projectID),
			map[string]string{"completionDate": "2026-02-02"}, &result)
		if !result.Success || result.Message != "Project finalised successfully" {
			t.Fatalf("unexpected result: %+v", result)
		}

		doJSON(t, http.MethodPost, fmt.Sprintf("%s/projects/%d/finalise", server.URL, projectID),
			map[string]string{"completionDate": "2027-03-03"}, &result)
		if result.Success || result.Message != "This project is already finalised" {
			t.Errorf("unexpected result: %+v", result)
		}

		var project models.Project
		doJSON(t, http.MethodGet, fmt.Sprintf("%s/projects/%d", server.URL, projectID), nil, &project)
		if project.CompletionDate.String() != "2026-02-02" {
			t.Errorf("completion date changed: %s", project.CompletionDate)
		}
	})

	t.Run("finalise reports the outstanding fee", func(t *testing.T) {
		var create service.Result
		doJSON(t, http.MethodPost, server.URL+"/projects", service.ProjectCreateRequest{
			Name: "Fee Flats", BuildingType: "Flats", CustomerID: customerID,
			TotalFee: 90000, AmountPaidToDate: 25000,
		}, &create)
		if !create.Success {
			t.Fatalf("project create failed: %q", create.Message)
		}
		var feeID int64
		fmt.Sscanf(create.Message, "Project created successfully with ID: %d", &feeID)

		var response struct {
			service.Result
			OutstandingFee string `json:"outstandingFee"`
		}
		doJSON(t, http.MethodPost, fmt.Sprintf("%s/projects/%d/finalise", server.URL, feeID), nil, &response)
		if !response.Success {
			t.Fatalf("finalise failed: %q", response.Message)
		}
		if response.OutstandingFee != "65000.00" {
			t.Errorf("outstanding fee: got %q, want %q", response.OutstandingFee, "65000.00")
		}
	})

	t.Run("overdue and incomplete listings", func(t *testing.T) {
		var lateResult service.Result
		doJSON(t, http.MethodPost, server.URL+"/projects", service.ProjectCreateRequest{
			Name: "Late Lodge", BuildingType: "Lodge", CustomerID: customerID,
			Deadline: models.Today().AddDays(-7),
		}, &lateResult)
		if !lateResult.Success {
			t.Fatalf("project create failed: %q", lateResult.Message)
		}

		var overdue []models.ProjectSummary
		doJSON(t, http.MethodGet, server.URL+"/projects/overdue", nil, &overdue)
		if len(overdue) != 1 || overdue[0].Name != "Late Lodge" {
			t.Errorf("overdue: %+v", overdue)
		}

		var incomplete []models.ProjectSummary
		doJSON(t, http.MethodGet, server.URL+"/projects/incomplete", nil, &incomplete)
		if len(incomplete) != 1 || incomplete[0].Name != "Late Lodge" {
			t.Errorf("incomplete: %+v", incomplete)
		}
	})

	t.Run("deleting a referenced customer is rejected with warnings", func(t *testing.T) {
		var response struct {
			service.Result
			LinkedProjects []string `json:"linkedProjects"`
		}
		doJSON(t, http.MethodDelete, fmt.Sprintf("%s/people/%d", server.URL, customerID), nil, &response)
		if response.Success {
			t.Fatal("expected customer delete to be rejected")
		}
		if response.Message != "Cannot delete this customer: They are assigned to active projects." {
			t.Errorf("unexpected message: %q", response.Message)
		}
	})

	t.Run("delete project", func(t *testing.T) {
		var result service.Result
		doJSON(t, http.MethodDelete, fmt.Sprintf("%s/projects/%d", server.URL, projectID), nil, &result)
		if !result.Success || result.Message != "Project deleted successfully" {
			t.Errorf("unexpected result: %+v", result)
		}

		status := doJSON(t, http.MethodGet, fmt.Sprintf("%s/projects/%d", server.URL, projectID), nil, nil)
		if status != http.StatusNotFound {
			t.Errorf("status: got %d, want 404", status)
		}
	})
}

func TestInvalidInput(t *testing.T) {
	server := setupTestServer(t)

	if status := doJSON(t, http.MethodGet, server.URL+"/projects/abc", nil, nil); status != http.StatusBadRequest {
		t.Errorf("non-numeric id: got %d, want 400", status)
	}
	if status := doJSON(t, http.MethodGet, server.URL+"/projects/search", nil, nil); status != http.StatusBadRequest {
		t.Errorf("missing name param: got %d, want 400", status)
	}

	req, _ := http.NewRequest(http.MethodPost, server.URL+"/people", bytes.NewReader([]byte("{not json")))
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("malformed body: got %d, want 400", resp.StatusCode)
	}
}
