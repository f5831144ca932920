// Package api serves the COBA compliance monitoring REST API: the service
// catalog, SLAs, incidents and requests, audits, non-conformities, risks,
// assets, problems, reports, the dashboard, ISO tracking and the assistant.
//
// Handlers carry swag annotations; `swag init -g internal/api/doc.go`
// produces the OpenAPI document.
//
//	@title			COBA Monitoring API
//	@version		1.0
//	@description	Compliance monitoring for ISO/IEC 20000-1 and ISO 9001
//	@BasePath		/api/v1
package api
