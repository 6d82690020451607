package models

import "time"

// TaskStatus represents the current lifecycle state of a provisioning task.
// Statuses only ever advance forward: pending -> in-progress -> completed.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
)

// WorkType identifies the pipeline stage a task belongs to. It selects the
// stage handler and the required-field/required-document policy for the task.
type WorkType string

const (
	WorkTypeDataGathering     WorkType = "data-gathering"
	WorkTypePaymentCollection WorkType = "payment-collection"
	WorkTypePlantInstallation WorkType = "plant-installation"
	WorkTypeWarrantyUpload    WorkType = "warranty-upload"
	WorkTypeReassignApproval  WorkType = "reassignment-approval"
)

// Task represents one unit of pipeline work tied to a customer. Tasks are
// created server-side when a stage of the customer pipeline is scheduled and
// are mutated only through the board orchestrator and stage handlers.
type Task struct {
	ID           string     `json:"id" yaml:"id"`
	Reference    string     `json:"reference" yaml:"reference"`
	WorkType     WorkType   `json:"work_type" yaml:"work_type"`
	Status       TaskStatus `json:"status" yaml:"status"`
	AssignedRole string     `json:"assigned_role" yaml:"assigned_role"`
	AssignedOn   time.Time  `json:"assigned_on" yaml:"assigned_on"`
	Work         string     `json:"work" yaml:"work"`
	CustomerID   string     `json:"registered_customer_id,omitempty" yaml:"registered_customer_id,omitempty"`
}
