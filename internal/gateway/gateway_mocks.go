package gateway

//go:generate moq -pkg mocks -out ./mocks/contract_gateway_mock.go . ContractGateway
