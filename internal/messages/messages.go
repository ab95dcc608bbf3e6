package messages

// User-facing text. Handlers format these with fmt.Sprintf where they carry verbs.
const (
	MsgReasonBot              = "User is a bot."
	MsgReasonMissingUsername  = "Missing username."
	MsgReasonUsernameTooShort = "Username too short (< %d)."
	MsgReasonFiltered         = "Filtered by rules."

	MsgReasonFlood      = "Sending messages too fast"
	MsgReasonLink       = "Links are not allowed here"
	MsgReasonBannedWord = "Message contains a banned word: %s"

	MsgWelcomeDefault = "✅ You have been approved to join %s.\n\nThis %s uses an automatic gatekeeper to manage join requests.\nPlease read the rules and respect other members."

	MsgOwnerJoinPending  = "ℹ️ Join request pending in %s (%d).\nMode is OFF, so I am not auto-approving."
	MsgOwnerJoinDeclined = "❌ Declined join request in %s (%d).\nUser: %d\nReason: %s"
	MsgOwnerJoinError    = "⚠️ Error while processing join request in %s (%d).\nUser: %d\nError: %v"
	MsgOwnerEscalation   = "🚨 Warning limit reached in chat %d.\nUser: %d\nAction: %s\nTriggered by: %s"

	MsgWarning = "⚠️ %s, %s. Warning %d/%d."

	MsgVerifyPrompt   = "👋 Welcome, %s!\n\nThis chat uses safe welcome: you can read but not write until you confirm you are human. Press the button below."
	MsgVerifyButton   = "✅ I'm human"
	MsgVerifyDone     = "✅ %s is verified. Welcome!"
	MsgVerifyNotYou   = "This button is not for you."
	MsgVerifyExpired  = "This verification is no longer active."
	MsgVerifyNoRecord = "Nothing to verify."

	MsgAdminsOnly    = "❌ This command is for admins only."
	MsgBotNotAdmin   = "❌ I need admin rights in this chat before you can configure me."
	MsgGroupOnly     = "This command only works inside a group chat."
	MsgInvalidMode   = "Invalid mode. Use: auto, filtered, or off."
	MsgInvalidOnOff  = "Invalid value. Use: on or off."
	MsgInvalidInt    = "Please provide a valid integer."
	MsgValueTooLow   = "Value must be %d or higher."
	MsgInvalidAction = "Invalid action. Use: mute or kick."
	MsgNoValidItems  = "No valid items found in your input."

	MsgModeUpdated     = "✅ Mode updated to: %s"
	MsgToggleUpdated   = "✅ %s set to: %s"
	MsgNumberUpdated   = "✅ %s set to: %d"
	MsgActionUpdated   = "✅ Warnings action set to: %s"
	MsgWelcomeUpdated  = "✅ Welcome message updated."
	MsgWelcomeClear    = "✅ Welcome message reset to default."
	MsgWordsAdded      = "✅ Added %d banned %s."
	MsgWordsCleared    = "✅ Banned words list cleared."
	MsgSettingsFailed  = "❌ Failed to update settings, try again later."

	MsgStartPrivate = "👋 Hello!\n\nI am a professional join request manager and moderation bot.\nI can automatically approve or filter join requests and moderate messages in groups where I am an admin.\n\nTo use me:\n1️⃣ Add me to your group or channel\n2️⃣ Promote me as admin\n3️⃣ Enable join requests (Request to Join)\n4️⃣ Use /settings inside the group (admins only)"
	MsgStartOwner   = "\nYou are registered as the global admin.\nUse /status in any chat to see stats."
	MsgStartGroup   = "✅ I am active in this chat.\n\nOnly admins can configure me.\nUse /settings to see current configuration."

	MsgHelp = "🤖 *Gatekeeper Bot Help*\n\nThese commands affect %s:\n\n/status - Show current mode and stats\n/settings - Show configuration\n/set_mode <auto|filtered|off>\n/set_require_username <on|off>\n/set_block_bots <on|off>\n/set_min_username_length <number>\n/set_strict <on|off>\n/set_block_links <on|off>\n/add_banned_words <w1, w2, ...>\n/clear_banned_words\n/set_flood <on|off>\n/set_flood_limit <number>\n/set_flood_window <seconds>\n/set_warnings <on|off>\n/set_warnings_limit <number>\n/set_warnings_action <mute|kick>\n/set_warnings_mute_minutes <number>\n/set_safe_welcome <on|off>\n/set_welcome <text, empty resets>\n/set_clean_service <on|off>\n/test_join - Simulate join handling"

	MsgStatus = "📊 *Status for this %s*\n\nMode: `%s`\nApproved today: `%d`\nDeclined today: `%d`\nApproved total: `%d`\nDeclined total: `%d`"

	MsgSettings = "⚙️ *Settings for this %s*\n\nMode: `%s`\nStrict mode: `%s`\nRequire username: `%s`\nBlock bots: `%s`\nMin username length: `%d`\nBlock links: `%s`\nBanned words: `%d`\nFlood control: `%s` (max %d in %ds)\nWarnings: `%s` (limit %d, action %s, mute %d min)\nSafe welcome: `%s`\nClean service messages: `%s`"

	MsgTestJoin = "🧪 Test Join Handling\n\nMode: %s\nStrict mode: %v\nRequire username: %v\nBlock bots: %v\nMin username length: %d\n\nThis is only a simulation. Real join requests will follow these rules."

	MsgMainMenu         = "🔧 *Gatekeeper menu*\n\nPick a chat to manage."
	MsgNoKnownChats     = "I have not seen any chats yet. Add me to a group first."
	MsgSettingsForChat  = "⚙️ Settings for *%s*"
	MsgChatStatsFor     = "📊 Stats for *%s*\n\nApproved today: %d\nDeclined today: %d\nApproved total: %d\nDeclined total: %d\nPending verifications: %d"

	BtnBack        = "⬅️ Back"
	BtnMyChats     = "My chats"
	BtnStatistics  = "📊 Statistics"
	BtnMode        = "Mode: %s"
	BtnBlockBots   = "%s Block bots"
	BtnRequireUser = "%s Require username"
	BtnStrict      = "%s Strict mode"
	BtnBlockLinks  = "%s Block links"
	BtnFlood       = "%s Flood control"
	BtnWarnings    = "%s Warnings"
	BtnSafeWelcome = "%s Safe welcome"
	BtnCleanSvc    = "%s Clean service messages"
)
