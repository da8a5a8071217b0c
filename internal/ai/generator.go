package ai

import "context"

// Generator отправляет один промпт модели и возвращает сгенерированный текст.
// Пустой ответ модели возвращается как "" без ошибки.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc позволяет использовать обычную функцию как Generator.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
