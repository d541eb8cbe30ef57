package services

import (
	"context"
	"testing"
	"time"

	"portfolio-backend-go/internal/models"
)

func TestListServicesHidesInactiveAndOrders(t *testing.T) {
	ctx := context.Background()
	database := openTestDB(t)

	items := []models.Service{
		{Name: "Zeta", Description: "z", Order: 1, IsActive: true},
		{Name: "Alpha", Description: "a", Order: 1, IsActive: true},
		{Name: "First", Description: "f", Order: 0, IsActive: true},
		{Name: "Hidden", Description: "h", Order: 0, IsActive: false},
	}
	for i := range items {
		if err := CreateService(ctx, database, &items[i]); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	public, err := ListServices(ctx, database, Public)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	names := []string{}
	for _, item := range public {
		names = append(names, item.Name)
	}
	want := []string{"First", "Alpha", "Zeta"}
	if len(names) != len(want) {
		t.Fatalf("names = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names = %v, want %v", names, want)
		}
	}

	all, err := ListServices(ctx, database, Admin)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("admin sees %d services", len(all))
	}

	if _, err := GetService(ctx, database, Public, items[3].ID); !IsNotFound(err) {
		t.Fatalf("inactive service should be hidden, got %v", err)
	}
	if _, err := GetService(ctx, database, Admin, items[3].ID); err != nil {
		t.Fatalf("admin get: %v", err)
	}
}

func TestUpdateAndDeleteService(t *testing.T) {
	ctx := context.Background()
	database := openTestDB(t)

	item := models.Service{Name: "Design", Description: "d", IsActive: true}
	if err := CreateService(ctx, database, &item); err != nil {
		t.Fatalf("create: %v", err)
	}
	item.Name = "Web Design"
	item.IsActive = false
	if err := UpdateService(ctx, database, &item); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := GetService(ctx, database, Admin, item.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Web Design" || got.IsActive {
		t.Fatalf("unexpected service %+v", got)
	}
	if err := DeleteService(ctx, database, item.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := DeleteService(ctx, database, item.ID); !IsNotFound(err) {
		t.Fatalf("second delete = %v", err)
	}
	missing := models.Service{ID: 999, Name: "x", Description: "x"}
	if err := UpdateService(ctx, database, &missing); !IsNotFound(err) {
		t.Fatalf("update missing = %v", err)
	}
}

func TestCreateServiceValidates(t *testing.T) {
	item := models.Service{Name: "", Description: ""}
	err := CreateService(context.Background(), openTestDB(t), &item)
	fields := fieldErrors(t, err)
	if fields["name"][0] != "This field may not be blank." {
		t.Fatalf("name errors = %v", fields["name"])
	}
	if _, ok := fields["description"]; !ok {
		t.Fatalf("missing description error: %v", fields)
	}
}

func TestSkillProficiencyIsStoredAsGiven(t *testing.T) {
	ctx := context.Background()
	database := openTestDB(t)
	item := models.Skill{Name: "Go", Proficiency: 150, IsActive: true}
	if err := CreateSkill(ctx, database, &item); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := GetSkill(ctx, database, Public, item.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Proficiency != 150 {
		t.Fatalf("proficiency = %d", got.Proficiency)
	}
}

func TestTestimonialsOrderByOrderThenNewestDate(t *testing.T) {
	ctx := context.Background()
	database := openTestDB(t)
	items := []models.Testimonial{
		{ClientName: "Old", Date: models.NewDate(2022, time.March, 1), Order: 1},
		{ClientName: "New", Date: models.NewDate(2024, time.March, 1), Order: 1},
		{ClientName: "Pinned", Date: models.NewDate(2020, time.March, 1), Order: 0},
	}
	for i := range items {
		items[i].ClientAvatar = "testimonials/a.png"
		items[i].Content = "Great"
		items[i].IsActive = true
		if err := CreateTestimonial(ctx, database, &items[i]); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	list, err := ListTestimonials(ctx, database, Public)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 || list[0].ClientName != "Pinned" || list[1].ClientName != "New" || list[2].ClientName != "Old" {
		t.Fatalf("unexpected order: %+v", list)
	}
	if list[1].Date.String() != "2024-03-01" {
		t.Fatalf("date round trip = %s", list[1].Date)
	}
}

func TestClientsHideInactive(t *testing.T) {
	ctx := context.Background()
	database := openTestDB(t)
	active := models.Client{Name: "Acme", Logo: "clients/acme.png", Website: "https://acme.test", IsActive: true}
	hidden := models.Client{Name: "Gone", Logo: "clients/gone.png"}
	for _, item := range []*models.Client{&active, &hidden} {
		if err := CreateClient(ctx, database, item); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	list, err := ListClients(ctx, database, Public)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Acme" {
		t.Fatalf("clients = %+v", list)
	}
}

func TestClientWebsiteMustBeURL(t *testing.T) {
	item := models.Client{Name: "Acme", Logo: "clients/acme.png", Website: "not a url"}
	fields := fieldErrors(t, CreateClient(context.Background(), openTestDB(t), &item))
	if fields["website"][0] != "Enter a valid URL." {
		t.Fatalf("website errors = %v", fields["website"])
	}
}
