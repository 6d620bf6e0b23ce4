package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "medvault/docs"
	"medvault/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// gatherer backs /metrics; pass the registry the Prometheus middleware writes to.
func RegisterRoutes(app *fiber.App, db *sql.DB, doctors service.DoctorService, patients service.PatientService, gatherer prometheus.Gatherer) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	// Swagger UI. The document leaves host and schemes empty, so the UI
	// targets whichever host and scheme served it.
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")

	api.Post("/doctor/register", RegisterDoctor(doctors))
	api.Get("/doctors", ListDoctors(doctors))
	api.Delete("/doctor/:doctorId", DeleteDoctor(doctors))
	api.Put("/doctor/:doctorId", UpdateDoctor(doctors))

	api.Post("/patient/register", RegisterPatient(patients))
	api.Get("/patients", ListPatients(patients))
	api.Delete("/patients/:patientId", DeletePatient(patients))
	api.Put("/patient/:patientId", UpdatePatient(patients))
}
