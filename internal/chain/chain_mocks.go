package chain

//go:generate moq -pkg mocks -out ./mocks/tx_source_mock.go . TxSource

//go:generate moq -pkg mocks -out ./mocks/rpc_client_mock.go . RPCClient
