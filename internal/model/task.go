package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UnassignedName is the display name cached on a task that has no assignee.
const UnassignedName = "unassigned"

type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Deadline    time.Time          `bson:"deadline" json:"deadline"`
	Completed   bool               `bson:"completed" json:"completed"`
	// AssignedUser is the hex id of the assignee, or "" when unassigned.
	// AssignedUserName is a snapshot of the assignee's name taken at
	// assignment time; it is not refreshed when the user is later renamed.
	AssignedUser     string `bson:"assignedUser" json:"assignedUser"`
	AssignedUserName string `bson:"assignedUserName" json:"assignedUserName"`
}
