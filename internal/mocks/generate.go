// Package mocks holds minimock doubles of the transport and worker driver
// interfaces.
package mocks

//go:generate go tool minimock -i github.com/kvbrowse/kvcore/transport.Transport -o transport_mock.go -n TransportMock -p mocks
//go:generate go tool minimock -i github.com/kvbrowse/kvcore/proxy.Driver -o driver_mock.go -n DriverMock -p mocks
