// Package ai оборачивает внешний генеративный API.
//
// Остальной код зависит только от интерфейса Generator (промпт на входе, текст на выходе),
// поэтому в тестах клиент подменяется детерминированной заглушкой без сетевых вызовов.
package ai
