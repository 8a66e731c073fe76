package tourpackage

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	memoryRepo "tourdesk/database/repository/memory"
	"tourdesk/models"
	"tourdesk/services/availability"
	"tourdesk/services/storage"
	"tourdesk/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upload(t *testing.T, name string) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write([]byte("img"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

type fixture struct {
	store *memoryRepo.Store
	svc   *DefaultTourPackageService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memoryRepo.NewStore()
	avail := availability.NewDefaultAvailabilityService(store.Packages(), store.Bookings(), store.Drivers())
	return &fixture{
		store: store,
		svc:   NewDefaultTourPackageService(store.Packages(), store.Drivers(), avail, storage.NewLocalStorage(t.TempDir(), "/uploads")),
	}
}

func (f *fixture) driver(t *testing.T, companyID string) string {
	t.Helper()
	d := &models.Driver{CompanyID: companyID, Name: "Rashid"}
	require.NoError(t, f.store.Drivers().Create(context.Background(), d))
	return d.ID
}

func input(title string, drivers ...string) PackageInput {
	return PackageInput{Title: title, Country: "UAE", City: "Dubai", Currency: "AED", Price: 150, DriverIDs: drivers}
}

func TestCreateWithImagesAndDrivers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	d := f.driver(t, "c1")

	p, err := f.svc.Create(ctx, "c1", input("Desert Safari", d, d, ""), Images{
		Cover:   upload(t, "cover.jpg"),
		Gallery: []*multipart.FileHeader{upload(t, "g1.png"), upload(t, "notes.txt")},
	})
	require.NoError(t, err)
	assert.Equal(t, models.PackageStatusActive, p.Status)

	detail, err := f.svc.Get(ctx, "c1", p.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.CoverImage)
	assert.Len(t, detail.GalleryImages, 1)
	require.Len(t, detail.Drivers, 1)
	assert.Equal(t, d, detail.Drivers[0].ID)
}

func TestCreateRequiresCoverAndOwnDrivers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, "c1", input("Safari"), Images{})
	assert.True(t, utils.IsValidation(err))

	foreign := f.driver(t, "c2")
	_, err = f.svc.Create(ctx, "c1", input("Safari", foreign), Images{Cover: upload(t, "c.jpg")})
	assert.True(t, utils.IsNotFound(err))
}

func TestUpdateReplacesCover(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.svc.Create(ctx, "c1", input("Safari"), Images{Cover: upload(t, "a.jpg")})
	require.NoError(t, err)
	in := input("Safari Deluxe")
	in.Status = models.PackageStatusInactive
	_, err = f.svc.Update(ctx, "c1", p.ID, in, Images{Cover: upload(t, "b.jpg"), Gallery: []*multipart.FileHeader{upload(t, "g.jpg")}})
	require.NoError(t, err)

	detail, err := f.svc.Get(ctx, "c1", p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Safari Deluxe", detail.Title)
	assert.Contains(t, detail.CoverImage.Path, "_b.jpg")
	require.Len(t, detail.GalleryImages, 1)

	require.NoError(t, f.svc.DeleteImage(ctx, "c1", detail.GalleryImages[0].ID))
	assert.True(t, utils.IsNotFound(f.svc.DeleteImage(ctx, "c1", detail.GalleryImages[0].ID)))

	_, err = f.svc.PublicDetail(ctx, p.ID)
	assert.True(t, utils.IsNotFound(err))
}

func TestListPaginatesAndHidesFullyBooked(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	d := f.driver(t, "c1")

	var ids []string
	for _, title := range []string{"Alpha", "Bravo", "Charlie"} {
		p, err := f.svc.Create(ctx, "c1", input(title, d), Images{Cover: upload(t, "c.jpg")})
		require.NoError(t, err)
		ids = append(ids, p.ID)
	}

	page, err := f.svc.List(ctx, "c1", ListOptions{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Alpha", page.Items[0].Title)

	require.NoError(t, f.store.Bookings().Create(ctx, &models.ManualBooking{CompanyID: "c1", TourPackageID: ids[0], TravelDate: "2026-05-01"}))
	page, err = f.svc.List(ctx, "c1", ListOptions{TravelDate: "2026-05-01"})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	for _, p := range page.Items {
		assert.NotEqual(t, ids[0], p.ID)
	}

	public, err := f.svc.PublicList(ctx, ListOptions{Search: "BRAVO"})
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "Bravo", public[0].Title)
}

func TestDeleteHidesPackage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.svc.Create(ctx, "c1", input("Safari"), Images{Cover: upload(t, "a.jpg")})
	require.NoError(t, err)
	assert.True(t, utils.IsNotFound(f.svc.Delete(ctx, "c2", p.ID)))
	require.NoError(t, f.svc.Delete(ctx, "c1", p.ID))

	_, err = f.svc.Get(ctx, "c1", p.ID)
	assert.True(t, utils.IsNotFound(err))
}
