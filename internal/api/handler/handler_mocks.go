package handler

//go:generate moq -pkg mocks -out ./mocks/order_service_mock.go . OrderService
//go:generate moq -pkg mocks -out ./mocks/appeal_service_mock.go . AppealService
//go:generate moq -pkg mocks -out ./mocks/health_checker_mock.go . HealthChecker
