package localfs

import "errors"

var (
	ErrContextDone   = errors.New("отмена контекста")
	ErrNameEmpty     = errors.New("имя файла не может быть пустым")
	ErrNameInvalid   = errors.New("имя файла не может содержать путь")
	ErrFileNotFound  = errors.New("файл не найден")
	ErrFileExists    = errors.New("архив с таким именем уже существует")
	ErrReadDirFailed = errors.New("не удалось прочитать директорию")
	ErrStatFailed    = errors.New("не удалось получить информацию о файле")
	ErrCreateFailed  = errors.New("не удалось создать файл")
	ErrWriteFailed   = errors.New("не удалось записать файл")
	ErrCommitFailed  = errors.New("не удалось зафиксировать архив")
	ErrRemoveFailed  = errors.New("не удалось удалить файл")
	ErrAlreadyClosed = errors.New("архив уже зафиксирован или отменен")
)
