package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Russian

	message.SetString(lang, "bot.help",
		"🎉 *Доступные команды:*\n\n"+
			"➕ Добавить день рождения:\n"+
			"`/add ФИО ДД\\.ММ\\.ГГГГ`\n\n"+
			"❌ Удалить день рождения:\n"+
			"`/remove номер`\n\n"+
			"📅 Список дней рождений:\n"+
			"`/list`")
	message.SetString(lang, "bot.add.success",
		"🎉 *%s* добавлен\\(а\\)\\!\nДата: `%s`")
	message.SetString(lang, "bot.add.usage",
		"❌ Ошибка: Неверный формат\\. Используйте:\n`/add ФИО ДД\\.ММ\\.ГГГГ`")
	message.SetString(lang, "bot.list.empty",
		"📭 Список дней рождений пуст")
	message.SetString(lang, "bot.list.header",
		"📅 *Список дней рождений:*\n\n")
	message.SetString(lang, "bot.list.line",
		"🔹 *%d*: %s \\- %s\n")
	message.SetString(lang, "bot.remove.success",
		"✅ Запись *%d* удалена")
	message.SetString(lang, "bot.remove.usage",
		"❌ Неверный номер\\. Используйте `/list` для просмотра номеров")
	message.SetString(lang, "bot.remove.out_of_range",
		"❌ Записи с таким номером нет\\. Используйте `/list`")
	message.SetString(lang, "bot.announce.upcoming",
		"🚨 *Внимание\\!* Завтра \\(%s\\)\n🎂 День рождения у *%s*\\!\n_Не забудьте поздравить\\!_ 🎁")
	message.SetString(lang, "bot.announce.today",
		"🎈 *Сегодня %s* отмечает день рождения\\!\n🎊 Поздравляем и желаем счастья\\! 🥳")
}
