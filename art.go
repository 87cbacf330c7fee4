package banner

// Art is the block rendered into the header image.
const Art = `▄███████▄ ████████▄ █████████ ███▄    ██           ▄██████▄ ██     ██ ████████▄ ▄███████   ▄███████▄  ████████▄
██     ██ ██     ██ ██        ██▀██▄  ██          ██▀    ▀▀ ██     ██ ██     ██ ██         ██     ██  ██     ██
██     ██ ████████▀ ███████   ██  ██▄ ██ ████████ ██        ██     ██ ████████▀ ▀███████▄  ██     ██  ████████▀
██     ██ ██        ██        ██   ▀█▄██          ██▄    ▄▄ ██     ██ ██ ▀██▄          ██  ██     ██  ██ ▀██▄
▀███████▀ ██        █████████ ██    ▀███           ▀██████▀ ▀███████▀ ██   ▀███  ███████▀  ▀███████▀  ██   ▀███`
