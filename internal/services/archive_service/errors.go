package archive_service

import "errors"

var (
	ErrContextDone = errors.New("отмена контекста")

	ErrSourceNotFound = errors.New("исходная директория не найдена")
	ErrSourceNotDir   = errors.New("источник не является директорией")
	ErrSourceStat     = errors.New("не удалось получить информацию об источнике")

	ErrArchiveCreate = errors.New("не удалось создать архив")
	ErrArchiveWrite  = errors.New("не удалось записать архив")
	ErrArchiveCommit = errors.New("не удалось сохранить архив")

	ErrWalkFailed     = errors.New("не удалось обойти исходную директорию")
	ErrFileOpenFailed = errors.New("не удалось открыть файл")
	ErrFileCopyFailed = errors.New("не удалось скопировать файл")
	ErrHeaderFailed   = errors.New("не удалось записать заголовок tar")
)
