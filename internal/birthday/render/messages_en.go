package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, "bot.help",
		"🎉 *Available commands:*\n\n"+
			"➕ Add a birthday:\n"+
			"`/add Full Name DD\\.MM\\.YYYY`\n\n"+
			"❌ Remove a birthday:\n"+
			"`/remove number`\n\n"+
			"📅 List birthdays:\n"+
			"`/list`")
	message.SetString(lang, "bot.add.success",
		"🎉 *%s* added\\!\nDate: `%s`")
	message.SetString(lang, "bot.add.usage",
		"❌ Error: invalid format\\. Use:\n`/add Full Name DD\\.MM\\.YYYY`")
	message.SetString(lang, "bot.list.empty",
		"📭 The birthday list is empty")
	message.SetString(lang, "bot.list.header",
		"📅 *Birthday list:*\n\n")
	message.SetString(lang, "bot.list.line",
		"🔹 *%d*: %s \\- %s\n")
	message.SetString(lang, "bot.remove.success",
		"✅ Entry *%d* removed")
	message.SetString(lang, "bot.remove.usage",
		"❌ Invalid number\\. Use `/list` to see the numbers")
	message.SetString(lang, "bot.remove.out_of_range",
		"❌ No entry with that number\\. Use `/list`")
	message.SetString(lang, "bot.announce.upcoming",
		"🚨 *Heads up\\!* Tomorrow \\(%s\\)\n🎂 is *%s*'s birthday\\!\n_Don't forget to congratulate\\!_ 🎁")
	message.SetString(lang, "bot.announce.today",
		"🎈 *Today %s* celebrates a birthday\\!\n🎊 Congratulations and best wishes\\! 🥳")
}
