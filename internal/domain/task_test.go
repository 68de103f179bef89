package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewTask(t *testing.T) {
	userID := uuid.New()

	// Test valid task creation
	task, err := NewTask(userID, "Write report", "Quarterly numbers", TaskStatusInProgress)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if task.UserID != userID {
		t.Errorf("Expected user ID %s, got %s", userID, task.UserID)
	}

	if task.Title != "Write report" {
		t.Errorf("Expected title %q, got %q", "Write report", task.Title)
	}

	if task.Status != TaskStatusInProgress {
		t.Errorf("Expected status %s, got %s", TaskStatusInProgress, task.Status)
	}

	if task.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	if task.UpdatedAt.IsZero() {
		t.Error("Expected non-zero UpdatedAt time")
	}

	// Empty status defaults to pending
	task, err = NewTask(userID, "Defaulted", "", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if task.Status != TaskStatusPending {
		t.Errorf("Expected status %s, got %s", TaskStatusPending, task.Status)
	}

	// Test invalid title
	_, err = NewTask(userID, "", "", TaskStatusPending)
	if err != ErrEmptyTaskTitle {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskTitle, err)
	}

	_, err = NewTask(userID, strings.Repeat("a", MaxTaskTitleLength+1), "", TaskStatusPending)
	if err != ErrTaskTitleTooLong {
		t.Errorf("Expected error %v, got %v", ErrTaskTitleTooLong, err)
	}

	// Test invalid description
	_, err = NewTask(userID, "Title", strings.Repeat("d", MaxTaskDescriptionLength+1), TaskStatusPending)
	if err != ErrTaskDescTooLong {
		t.Errorf("Expected error %v, got %v", ErrTaskDescTooLong, err)
	}

	// Test invalid status
	_, err = NewTask(userID, "Title", "", "archived")
	if err != ErrInvalidTaskStatus {
		t.Errorf("Expected error %v, got %v", ErrInvalidTaskStatus, err)
	}

	// Test missing owner
	_, err = NewTask(uuid.Nil, "Title", "", TaskStatusPending)
	if err != ErrEmptyTaskUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskUserID, err)
	}
}

func TestTaskValidate(t *testing.T) {
	validTask := Task{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Title:  "Valid task",
		Status: TaskStatusPending,
	}

	// Test valid task
	if err := validTask.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	// Test invalid ID
	invalidTask := validTask
	invalidTask.ID = uuid.Nil
	if err := invalidTask.Validate(); err != ErrEmptyTaskID {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskID, err)
	}

	// Test invalid user ID
	invalidTask = validTask
	invalidTask.UserID = uuid.Nil
	if err := invalidTask.Validate(); err != ErrEmptyTaskUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskUserID, err)
	}

	// Test invalid status
	invalidTask = validTask
	invalidTask.Status = "someday"
	if err := invalidTask.Validate(); err != ErrInvalidTaskStatus {
		t.Errorf("Expected error %v, got %v", ErrInvalidTaskStatus, err)
	}

	// Description at the limit is fine
	boundaryTask := validTask
	boundaryTask.Description = strings.Repeat("d", MaxTaskDescriptionLength)
	if err := boundaryTask.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestTaskValidateMultibyteLengths(t *testing.T) {
	validTask := Task{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Title:  "Valid task",
		Status: TaskStatusPending,
	}

	// Limits count characters, so a title of 255 two-byte runes is valid
	// even though it is 510 bytes.
	boundaryTask := validTask
	boundaryTask.Title = strings.Repeat("é", MaxTaskTitleLength)
	if err := boundaryTask.Validate(); err != nil {
		t.Errorf("Expected no error for %d-rune title, got %v", MaxTaskTitleLength, err)
	}

	boundaryTask.Title = strings.Repeat("é", MaxTaskTitleLength+1)
	if err := boundaryTask.Validate(); err != ErrTaskTitleTooLong {
		t.Errorf("Expected error %v, got %v", ErrTaskTitleTooLong, err)
	}

	boundaryTask = validTask
	boundaryTask.Description = strings.Repeat("ü", MaxTaskDescriptionLength)
	if err := boundaryTask.Validate(); err != nil {
		t.Errorf("Expected no error for %d-rune description, got %v", MaxTaskDescriptionLength, err)
	}

	boundaryTask.Description = strings.Repeat("ü", MaxTaskDescriptionLength+1)
	if err := boundaryTask.Validate(); err != ErrTaskDescTooLong {
		t.Errorf("Expected error %v, got %v", ErrTaskDescTooLong, err)
	}
}

func TestTaskStatusIsValid(t *testing.T) {
	for _, status := range TaskStatuses() {
		if !status.IsValid() {
			t.Errorf("Expected status %s to be valid", status)
		}
	}

	for _, status := range []TaskStatus{"", "PENDING", "complete", "in-progress"} {
		if status.IsValid() {
			t.Errorf("Expected status %q to be invalid", status)
		}
	}
}
