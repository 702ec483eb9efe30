package retention_service

import "errors"

var (
	ErrContextDone = errors.New("отмена контекста")

	ErrListFailed   = errors.New("не удалось получить список файлов директории назначения")
	ErrStatFailed   = errors.New("не удалось получить информацию об архиве")
	ErrRemoveFailed = errors.New("не удалось удалить устаревший архив")
)
