package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name ReportRepository --dir ../domain/playbyplay --output domain/playbyplay --outpkg playbyplaymock --filename report_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/buzzerbeater --output domain/buzzerbeater --outpkg buzzerbeatermock --filename repository_mock.go
