//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"meet-lab/domain"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// SessionDirectory is the registry's view of the connection layer's
// username -> session mapping. The registry never creates or removes
// entries, it only resolves usernames to live sessions.
type SessionDirectory interface {
	Lookup(username string) (*domain.Session, bool)
	Len() int
}

// IRegistry is the authoritative room membership store.
type IRegistry interface {
	CreateRoom(name string)
	JoinRoom(username, name string) error
	LeaveRoom(username string) error
	UserRoom(username string) (string, bool)
	Rooms() []string
	Users(name string) []string
	Counts() map[string]int
}
