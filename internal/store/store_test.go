package store

import (
	"context"
	"reflect"
	"testing"

	"campus-planner/internal/schedule"
)

func TestMemoryGetSet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if _, ok, err := m.Get(ctx, "alice"); err != nil || ok {
		t.Fatalf("Get(unknown) = %v, %v", ok, err)
	}

	data := UserData{
		Schedule: schedule.Schedule{
			{Hour: "9:30", Location: "CSE", Desc: "lecture"},
			{Hour: "10:30", Location: "SUZ", Desc: "study"},
		},
		Friends: []string{"bob"},
	}
	if err := m.Set(ctx, "alice", data); err != nil {
		t.Fatal(err)
	}
	data.Friends[0] = "mallory" // the store keeps its own copy

	got, ok, err := m.Get(ctx, "alice")
	if err != nil || !ok {
		t.Fatalf("Get(alice) = %v, %v", ok, err)
	}
	if !got.HasFriend("bob") || got.HasFriend("mallory") {
		t.Errorf("friends = %v, want [bob]", got.Friends)
	}
	if !reflect.DeepEqual(got.Schedule, data.Schedule) {
		t.Errorf("schedule = %+v, want %+v", got.Schedule, data.Schedule)
	}

	m.Clear()
	if _, ok, _ := m.Get(ctx, "alice"); ok {
		t.Error("Clear did not remove alice")
	}
}

func TestMemoryCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := NewMemory()
	if err := m.Set(ctx, "alice", UserData{}); err == nil {
		t.Error("Set with canceled context succeeded")
	}
	if _, _, err := m.Get(ctx, "alice"); err == nil {
		t.Error("Get with canceled context succeeded")
	}
}
