//go:generate mockgen -source=../run_archive.go       -destination=./mock_run_archive.go       -package=mocks
//go:generate mockgen -source=../step_cache.go        -destination=./mock_step_cache.go        -package=mocks
//go:generate mockgen -source=../step_executor.go     -destination=./mock_step_executor.go     -package=mocks
//go:generate mockgen -source=../backend.go           -destination=./mock_backend.go           -package=mocks
//go:generate mockgen -source=../locator.go           -destination=./mock_locator.go           -package=mocks
//go:generate mockgen -source=../logger.go            -destination=./mock_logger.go            -package=mocks
//go:generate mockgen -source=../outcome_publisher.go -destination=./mock_outcome_publisher.go -package=mocks
//go:generate mockgen -source=../precheck_service.go -destination=mock_precheck_service.go -package=mocks

package mocks
